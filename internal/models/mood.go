package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Каноничные значения настроения.
const (
	MoodGreat     = "Great"
	MoodGood      = "Good"
	MoodOkay      = "Okay"
	MoodLow       = "Low"
	MoodExhausted = "Exhausted"

	DefaultMood = MoodOkay
)

// Moods — каноничные настроения в порядке от лучшего к худшему.
var Moods = []string{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodExhausted}

var moodAliases = map[string]string{
	"great":     MoodGreat,
	"good":      MoodGood,
	"okay":      MoodOkay,
	"ok":        MoodOkay,
	"low":       MoodLow,
	"exhausted": MoodExhausted,
}

// CanonicalMood приводит настроение к каноничному виду.
// Пустая строка даёт DefaultMood, неизвестное значение возвращается в Title Case.
func CanonicalMood(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMood
	}

	if m, ok := moodAliases[strings.ToLower(s)]; ok {
		return m
	}

	// Caser хранит состояние, поэтому создаётся на каждый вызов.
	return cases.Title(language.Und).String(s)
}
