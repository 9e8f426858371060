package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/guide"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
)

// recentDays — глубина истории, которую видит генератор гайда.
const recentDays = 7

// DailyGuide строит гайд на день day (нулевое значение — сегодня)
// по последней предыдущей записи и записям за последнюю неделю.
func (s *Service) DailyGuide(ctx context.Context, day time.Time) (string, error) {
	const op = "service/guide/DailyGuide"

	day = s.refOrToday(day)
	lg := log.From(ctx).With("op", op, "day", day.Format(models.DateLayout))

	entries, err := s.entriesUntil(ctx, op, &day)
	if err != nil {
		return "", err
	}

	// Серия, которую ещё можно продлить: если за day записи нет, считаем от вчера.
	streak := analytics.Streak(entries, day)
	if streak == 0 {
		streak = analytics.Streak(entries, day.AddDate(0, 0, -1))
	}

	in := guide.Context{
		Day:    day,
		Streak: streak,
		Recent: make([]models.DayEntry, 0, recentDays),
	}

	since := day.AddDate(0, 0, -recentDays)
	for i := range entries {
		e := entries[i]

		if e.Date.Before(day) {
			in.Previous = &e
		}

		if !e.Date.Before(since) {
			in.Recent = append(in.Recent, e)
		}
	}

	text, err := s.generator.Generate(ctx, in)
	if err != nil {
		lg.Error("guide generation failed", "err", err)

		return "", fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return text, nil
}
