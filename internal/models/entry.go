// models содержит доменные сущности lifelog.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"strings"
	"time"
)

// Границы и значение по умолчанию для всех оценок дня.
const (
	MinScore     = 1
	MaxScore     = 10
	DefaultScore = 5
)

// DayEntry — запись одного календарного дня.
//
// Особенности:
//   - Date всегда усечена до дня (полночь UTC), см. Day;
//   - Activities — каноничный список тегов через ", ";
//   - PhotoData — сериализованный payload фотографий (см. пакет photos);
//   - CreatedAt выставляется один раз и больше не меняется.
type DayEntry struct {
	Date              time.Time
	QualityScore      int
	MoodScore         int
	EnergyScore       int
	ProgressScore     int
	Mood              string
	Activities        string
	MorningPlan       string
	EveningReflection string
	PhotoData         []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDayEntry возвращает запись с значениями по умолчанию для дня day.
func NewDayEntry(day, now time.Time) *DayEntry {
	return &DayEntry{
		Date:          Day(day),
		QualityScore:  DefaultScore,
		MoodScore:     DefaultScore,
		EnergyScore:   DefaultScore,
		ProgressScore: DefaultScore,
		Mood:          DefaultMood,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
}

// IsEmpty сообщает, что в записи нет осмысленного содержимого:
// все оценки по умолчанию, тексты пустые, фотографий нет, настроение по умолчанию.
func (e *DayEntry) IsEmpty() bool {
	return e.QualityScore == DefaultScore &&
		e.MoodScore == DefaultScore &&
		e.EnergyScore == DefaultScore &&
		e.ProgressScore == DefaultScore &&
		(e.Mood == "" || e.Mood == DefaultMood) &&
		strings.TrimSpace(e.Activities) == "" &&
		strings.TrimSpace(e.MorningPlan) == "" &&
		strings.TrimSpace(e.EveningReflection) == "" &&
		len(e.PhotoData) == 0
}

// Day усекает момент времени до календарного дня.
// Календарная дата берётся в локации t, результат — полночь UTC этой даты.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout — формат даты дня в API и во встраиваемом хранилище.
const DateLayout = "2006-01-02"

// ParseDay разбирает дату вида YYYY-MM-DD.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}

	return Day(t), nil
}

// ClampScore приводит оценку к диапазону [MinScore, MaxScore].
// Ноль трактуется как «не задано» и заменяется на DefaultScore.
func ClampScore(v int) int {
	switch {
	case v == 0:
		return DefaultScore
	case v < MinScore:
		return MinScore
	case v > MaxScore:
		return MaxScore
	default:
		return v
	}
}

// ListOrder — порядок сортировки записей по дате.
type ListOrder int8

const (
	OrderAsc ListOrder = iota
	OrderDesc
)

// ListOptions — параметры выборки записей.
//
// Особенности:
//   - From/To включительные, nil — без ограничения;
//   - сортировка всегда по дате, направление задаёт Order.
type ListOptions struct {
	From  *time.Time
	To    *time.Time
	Order ListOrder
}
