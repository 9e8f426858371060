package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/tags"
)

// Summary — сводка по всем записям.
type Summary struct {
	TotalDays       int
	CurrentStreak   int
	LongestStreak   int
	AverageQuality  float64
	AverageMood     float64
	AverageEnergy   float64
	AverageProgress float64
	TopMood         string
	TopTags         []TagCount
}

// TagCount — частота тега.
type TagCount struct {
	Tag   string
	Count int
}

// topTagsLimit — сколько самых частых тегов попадает в сводку.
const topTagsLimit = 5

// Summarize собирает сводку; текущая серия считается от ref.
func Summarize(entries []models.DayEntry, ref time.Time) Summary {
	s := Summary{
		TotalDays:     TotalLoggedDays(entries),
		CurrentStreak: Streak(entries, ref),
		LongestStreak: LongestStreak(entries),
		TopTags:       []TagCount{},
	}

	if len(entries) == 0 {
		return s
	}

	var quality, mood, energy, progress int
	moods := make(map[string]int)
	tagCounts := make(map[string]*TagCount)
	var tagOrder []string

	for _, e := range entries {
		quality += e.QualityScore
		mood += e.MoodScore
		energy += e.EnergyScore
		progress += e.ProgressScore

		if e.Mood != "" {
			moods[e.Mood]++
		}

		for _, t := range tags.Parse(e.Activities) {
			key := strings.ToLower(t)
			if tc, ok := tagCounts[key]; ok {
				tc.Count++
				continue
			}
			tagCounts[key] = &TagCount{Tag: t, Count: 1}
			tagOrder = append(tagOrder, key)
		}
	}

	n := float64(len(entries))
	s.AverageQuality = float64(quality) / n
	s.AverageMood = float64(mood) / n
	s.AverageEnergy = float64(energy) / n
	s.AverageProgress = float64(progress) / n
	s.TopMood = topMood(moods)

	for _, key := range tagOrder {
		s.TopTags = append(s.TopTags, *tagCounts[key])
	}
	sort.SliceStable(s.TopTags, func(i, j int) bool {
		return s.TopTags[i].Count > s.TopTags[j].Count
	})
	if len(s.TopTags) > topTagsLimit {
		s.TopTags = s.TopTags[:topTagsLimit]
	}

	return s
}

// topMood выбирает самое частое настроение; при равенстве — по порядку models.Moods,
// затем по алфавиту.
func topMood(moods map[string]int) string {
	rank := make(map[string]int, len(models.Moods))
	for i, m := range models.Moods {
		rank[m] = i
	}

	best, bestCount := "", 0
	for m, c := range moods {
		switch {
		case c > bestCount:
			best, bestCount = m, c
		case c == bestCount && less(m, best, rank):
			best = m
		}
	}

	return best
}

func less(a, b string, rank map[string]int) bool {
	ra, okA := rank[a]
	rb, okB := rank[b]

	switch {
	case okA && okB:
		return ra < rb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}
