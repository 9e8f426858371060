// analytics содержит чистые функции над снимком записей дней:
// тренды оценок, распределение, серии подряд идущих дней и фильтрацию.
// Функции не изменяют входной срез.
package analytics

import (
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
)

// MaxWindowDays — верхняя граница окна тренда (около десяти лет).
const MaxWindowDays = 3660

// Metric — оценка, по которой строится тренд.
type Metric int8

const (
	MetricQuality Metric = iota
	MetricMood
	MetricEnergy
	MetricProgress
)

// ParseMetric разбирает имя метрики; пустая строка — MetricQuality.
func ParseMetric(s string) (Metric, bool) {
	switch s {
	case "", "quality":
		return MetricQuality, true
	case "mood":
		return MetricMood, true
	case "energy":
		return MetricEnergy, true
	case "progress":
		return MetricProgress, true
	default:
		return MetricQuality, false
	}
}

func (m Metric) String() string {
	switch m {
	case MetricMood:
		return "mood"
	case MetricEnergy:
		return "energy"
	case MetricProgress:
		return "progress"
	default:
		return "quality"
	}
}

func (m Metric) of(e models.DayEntry) int {
	switch m {
	case MetricMood:
		return e.MoodScore
	case MetricEnergy:
		return e.EnergyScore
	case MetricProgress:
		return e.ProgressScore
	default:
		return e.QualityScore
	}
}

// Point — значение тренда за один день. Score == 0 — записи за день нет.
type Point struct {
	Date  time.Time
	Score int
}

// Bucket — число записей с данной оценкой качества.
type Bucket struct {
	Score int
	Count int
}

// byDay индексирует записи по дню. При дубликатах побеждает последняя.
func byDay(entries []models.DayEntry) map[time.Time]models.DayEntry {
	m := make(map[time.Time]models.DayEntry, len(entries))
	for _, e := range entries {
		m[models.Day(e.Date)] = e
	}

	return m
}

// Trend возвращает тренд оценки качества, см. TrendOf.
func Trend(entries []models.DayEntry, windowDays int, ref time.Time) []Point {
	return TrendOf(MetricQuality, entries, windowDays, ref)
}

// TrendOf возвращает по одной точке на каждый день окна [ref-windowDays+1, ref]
// в хронологическом порядке. Дни без записи получают Score 0.
// Окно больше MaxWindowDays усекается до MaxWindowDays дней, заканчивающихся ref.
func TrendOf(metric Metric, entries []models.DayEntry, windowDays int, ref time.Time) []Point {
	if windowDays <= 0 {
		return []Point{}
	}

	windowDays = min(windowDays, MaxWindowDays)

	idx := byDay(entries)
	end := models.Day(ref)
	start := end.AddDate(0, 0, -(windowDays - 1))

	points := make([]Point, 0, windowDays)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		p := Point{Date: d}
		if e, ok := idx[d]; ok {
			p.Score = metric.of(e)
		}
		points = append(points, p)
	}

	return points
}

// Distribution считает записи по оценке качества для каждой корзины 1..10.
// Оценки вне диапазона не учитываются.
func Distribution(entries []models.DayEntry) []Bucket {
	buckets := make([]Bucket, models.MaxScore-models.MinScore+1)
	for i := range buckets {
		buckets[i].Score = models.MinScore + i
	}

	for _, e := range entries {
		if e.QualityScore < models.MinScore || e.QualityScore > models.MaxScore {
			continue
		}
		buckets[e.QualityScore-models.MinScore].Count++
	}

	return buckets
}

// Streak считает подряд идущие дни с записями, двигаясь назад от ref.
// Если за ref записи нет — 0.
func Streak(entries []models.DayEntry, ref time.Time) int {
	idx := byDay(entries)

	n := 0
	for d := models.Day(ref); ; d = d.AddDate(0, 0, -1) {
		if _, ok := idx[d]; !ok {
			return n
		}
		n++
	}
}

// LongestStreak возвращает длину самой длинной серии подряд идущих дней.
func LongestStreak(entries []models.DayEntry) int {
	idx := byDay(entries)

	best := 0
	for d := range idx {
		// Считаем только от начала серии.
		if _, ok := idx[d.AddDate(0, 0, -1)]; ok {
			continue
		}

		n := 0
		for cur := d; ; cur = cur.AddDate(0, 0, 1) {
			if _, ok := idx[cur]; !ok {
				break
			}
			n++
		}

		if n > best {
			best = n
		}
	}

	return best
}

// TotalLoggedDays возвращает число различных дней с хотя бы одной записью.
func TotalLoggedDays(entries []models.DayEntry) int {
	return len(byDay(entries))
}
