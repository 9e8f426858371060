package analytics

import (
	"strings"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/tags"
)

// Criteria — условия фильтрации. Пустые поля не участвуют, заданные объединяются по AND.
type Criteria struct {
	Mood         string
	Tag          string
	MinimumScore int
	SearchText   string
}

// IsZero сообщает, что ни одно условие не задано.
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Mood) == "" &&
		strings.TrimSpace(c.Tag) == "" &&
		c.MinimumScore <= 0 &&
		strings.TrimSpace(c.SearchText) == ""
}

// Filter возвращает записи, удовлетворяющие всем заданным условиям, в исходном порядке.
//
// Условия:
//   - Mood — совпадение каноничного настроения без учёта регистра;
//   - Tag — тег присутствует в Activities (без учёта регистра);
//   - MinimumScore — QualityScore >= MinimumScore;
//   - SearchText — подстрока без учёта регистра в плане, рефлексии, тегах и настроении.
func Filter(entries []models.DayEntry, c Criteria) []models.DayEntry {
	mood := strings.TrimSpace(c.Mood)
	if mood != "" {
		mood = models.CanonicalMood(mood)
	}
	tag := strings.TrimSpace(c.Tag)
	search := strings.ToLower(strings.TrimSpace(c.SearchText))

	out := make([]models.DayEntry, 0, len(entries))
	for _, e := range entries {
		if mood != "" && !strings.EqualFold(e.Mood, mood) {
			continue
		}

		if tag != "" && !tags.Contains(tag, e.Activities) {
			continue
		}

		if c.MinimumScore > 0 && e.QualityScore < c.MinimumScore {
			continue
		}

		if search != "" && !strings.Contains(searchable(e), search) {
			continue
		}

		out = append(out, e)
	}

	return out
}

func searchable(e models.DayEntry) string {
	return strings.ToLower(strings.Join([]string{
		e.MorningPlan,
		e.EveningReflection,
		e.Activities,
		e.Mood,
	}, "\n"))
}
