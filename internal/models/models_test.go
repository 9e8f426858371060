package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDay_TruncatesToUTCMidnightOfLocalDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2024, 3, 5, 1, 30, 0, 0, loc) // в UTC это ещё 4 марта.

	got := Day(in)
	require.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
	require.Equal(t, got, Day(got))
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	d, err := ParseDay(" 2024-02-29 ")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDay("29.02.2024")
	require.Error(t, err)
}

func TestClampScore(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultScore, ClampScore(0))
	require.Equal(t, MinScore, ClampScore(-3))
	require.Equal(t, MaxScore, ClampScore(42))
	require.Equal(t, 7, ClampScore(7))
}

func TestCanonicalMood(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":            MoodOkay,
		"  great ":    MoodGreat,
		"GOOD":        MoodGood,
		"ok":          MoodOkay,
		"exhausted":   MoodExhausted,
		"low":         MoodLow,
		"anxious":     "Anxious",
		"quite tired": "Quite Tired",
	}

	for in, want := range cases {
		require.Equal(t, want, CanonicalMood(in), "input %q", in)
	}
}

func TestDayEntry_IsEmpty(t *testing.T) {
	t.Parallel()

	now := time.Now()
	e := NewDayEntry(now, now)
	require.True(t, e.IsEmpty())
	require.Equal(t, Day(now), e.Date)

	e.MorningPlan = "  "
	require.True(t, e.IsEmpty(), "пробелы не считаются содержимым")

	e.EnergyScore = 6
	require.False(t, e.IsEmpty())

	e = NewDayEntry(now, now)
	e.PhotoData = []byte{1}
	require.False(t, e.IsEmpty())

	e = NewDayEntry(now, now)
	e.Mood = MoodGreat
	require.False(t, e.IsEmpty())
}
