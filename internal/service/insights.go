package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
)

type TrendInput struct {
	Metric analytics.Metric
	Days   int
	// Ref — последний день окна; нулевое значение — сегодня.
	Ref time.Time
}

// entriesUntil загружает все записи до дня to включительно (nil — без ограничения).
func (s *Service) entriesUntil(ctx context.Context, op string, to *time.Time) ([]models.DayEntry, error) {
	entries, err := s.entriesStorage.ListEntries(ctx, models.ListOptions{To: to})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storageErr(log.From(ctx).With("op", op), "storage error on ListEntries", err))
	}

	return entries, nil
}

// Trend возвращает ряд из Days точек, по одной на день, заканчивающийся днём Ref.
// Дни без записи дают точку со значением 0.
func (s *Service) Trend(ctx context.Context, input TrendInput) ([]analytics.Point, error) {
	const op = "service/insights/Trend"

	if input.Days <= 0 || input.Days > analytics.MaxWindowDays {
		log.From(ctx).Warn("invalid argument: trend window", "op", op, "days", input.Days)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ref := s.refOrToday(input.Ref)
	from := ref.AddDate(0, 0, -(input.Days - 1))

	entries, err := s.entriesStorage.ListEntries(ctx, models.ListOptions{From: &from, To: &ref})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storageErr(log.From(ctx).With("op", op), "storage error on ListEntries", err))
	}

	return analytics.TrendOf(input.Metric, entries, input.Days, ref), nil
}

// Distribution возвращает гистограмму QualityScore по всем записям (10 корзин).
func (s *Service) Distribution(ctx context.Context) ([]analytics.Bucket, error) {
	const op = "service/insights/Distribution"

	entries, err := s.entriesUntil(ctx, op, nil)
	if err != nil {
		return nil, err
	}

	return analytics.Distribution(entries), nil
}

// Streak возвращает число подряд идущих дней с записями, заканчивающихся днём ref.
func (s *Service) Streak(ctx context.Context, ref time.Time) (int, error) {
	const op = "service/insights/Streak"

	ref = s.refOrToday(ref)

	entries, err := s.entriesUntil(ctx, op, &ref)
	if err != nil {
		return 0, err
	}

	return analytics.Streak(entries, ref), nil
}

// Summary возвращает сводку по всем записям; текущая серия считается от ref.
func (s *Service) Summary(ctx context.Context, ref time.Time) (analytics.Summary, error) {
	const op = "service/insights/Summary"

	ref = s.refOrToday(ref)

	entries, err := s.entriesUntil(ctx, op, nil)
	if err != nil {
		return analytics.Summary{}, err
	}

	return analytics.Summarize(entries, ref), nil
}
