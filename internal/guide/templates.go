package guide

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/tags"
)

// Пороги оценок для выбора формулировок.
const (
	lowScore  = 4
	highScore = 8
)

// Templates — генератор по правилам. Не ходит в сеть и всегда возвращает непустой текст.
type Templates struct{}

var _ Generator = Templates{}

// Generate собирает три секции: Focus, Energy, Reflection.
func (Templates) Generate(_ context.Context, in Context) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Daily guide for %s\n", in.Day.Format(models.DateLayout))

	writeSection(&b, "Focus", focus(in))
	writeSection(&b, "Energy", energy(in))
	writeSection(&b, "Reflection", reflection(in))

	return strings.TrimRight(b.String(), "\n"), nil
}

func writeSection(b *strings.Builder, title string, lines []string) {
	fmt.Fprintf(b, "\n%s\n", title)
	for _, l := range lines {
		fmt.Fprintf(b, "- %s\n", l)
	}
}

func focus(in Context) []string {
	prev := in.Previous
	if prev == nil {
		return []string{"Start simple: write down one thing you want to get done today."}
	}

	var out []string
	switch {
	case prev.ProgressScore <= lowScore:
		out = append(out, fmt.Sprintf("Progress was low last time (%d/10). Pick one small task and finish it first.", prev.ProgressScore))
	case prev.ProgressScore >= highScore:
		out = append(out, fmt.Sprintf("Strong progress last time (%d/10). Keep the momentum on the same priority.", prev.ProgressScore))
	default:
		out = append(out, "Choose up to three priorities and order them before you start.")
	}

	if plan := strings.TrimSpace(prev.MorningPlan); plan != "" {
		out = append(out, "Revisit the previous plan: "+firstLine(plan))
	}

	return out
}

func energy(in Context) []string {
	prev := in.Previous
	if prev == nil {
		return []string{"Notice how your energy changes during the day and log it tonight."}
	}

	var out []string
	switch {
	case prev.EnergyScore <= lowScore:
		out = append(out, fmt.Sprintf("Energy was %d/10. Plan a real break and an early night.", prev.EnergyScore))
	case prev.EnergyScore >= highScore:
		out = append(out, fmt.Sprintf("Energy was %d/10. Use the morning for the hardest task.", prev.EnergyScore))
	default:
		out = append(out, "Keep a steady pace and step away from the screen every hour.")
	}

	switch models.CanonicalMood(prev.Mood) {
	case models.MoodLow, models.MoodExhausted:
		out = append(out, "Mood was "+strings.ToLower(prev.Mood)+". Be gentle with yourself and lower the bar where you can.")
	case models.MoodGreat:
		out = append(out, "Mood was great. Note what made it work.")
	}

	return out
}

func reflection(in Context) []string {
	var out []string

	if tag := topTag(in.Recent); tag != "" {
		out = append(out, fmt.Sprintf("%q shows up most often lately. Is it helping?", tag))
	}

	switch {
	case in.Streak >= 7:
		out = append(out, fmt.Sprintf("%d days in a row. Keep the streak going tonight.", in.Streak))
	case in.Streak > 0:
		out = append(out, fmt.Sprintf("Streak: %d day(s). One more entry tonight extends it.", in.Streak))
	default:
		out = append(out, "Close the day with a short reflection: one win, one lesson.")
	}

	return out
}

// topTag — самый частый тег среди recent; при равенстве — первый по алфавиту.
func topTag(recent []models.DayEntry) string {
	counts := make(map[string]int)
	display := make(map[string]string)

	for _, e := range recent {
		for _, t := range tags.Parse(e.Activities) {
			key := strings.ToLower(t)
			if _, ok := display[key]; !ok {
				display[key] = t
			}
			counts[key]++
		}
	}

	if len(counts) == 0 {
		return ""
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	return display[keys[0]]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}

	return s
}
