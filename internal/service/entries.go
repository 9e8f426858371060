package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/photos"
	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
	"github.com/pribylovaa/go-lifelog/internal/storage"
	"github.com/pribylovaa/go-lifelog/internal/tags"
)

// SaveEntryInput — частичное сохранение записи дня. nil-поля не меняются.
type SaveEntryInput struct {
	Day               time.Time
	QualityScore      *int
	MoodScore         *int
	EnergyScore       *int
	ProgressScore     *int
	Mood              *string
	Activities        *string
	MorningPlan       *string
	EveningReflection *string
	// Photos заменяет все фотографии дня; пустой список очищает их.
	Photos *PhotosInput
	// AutoSave — сохранение по уходу со страницы дня: пустая новая запись не создаётся.
	AutoSave bool
}

type PhotosInput struct {
	Photos         [][]byte
	ThumbnailIndex *int
}

type ListEntriesInput struct {
	From     *time.Time
	To       *time.Time
	Order    models.ListOrder
	Criteria analytics.Criteria
}

// Entry возвращает запись за день или ErrNotFound.
func (s *Service) Entry(ctx context.Context, day time.Time) (*models.DayEntry, error) {
	const op = "service/entries/Entry"

	if day.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	day = models.Day(day)
	lg := log.From(ctx).With("op", op, "day", day.Format(models.DateLayout))

	result, err := s.entriesStorage.EntryByDay(ctx, day)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundEntry):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on EntryByDay", err))
		}
	}

	return result, nil
}

// ListEntries возвращает записи диапазона, отфильтрованные по input.Criteria.
//
// Валидация:
//   - From не позже To;
//   - MinimumScore в диапазоне [0, MaxScore].
func (s *Service) ListEntries(ctx context.Context, input ListEntriesInput) ([]models.DayEntry, error) {
	const op = "service/entries/ListEntries"

	lg := log.From(ctx).With("op", op)

	opts := models.ListOptions{Order: input.Order}
	if input.From != nil {
		from := models.Day(*input.From)
		opts.From = &from
	}
	if input.To != nil {
		to := models.Day(*input.To)
		opts.To = &to
	}

	if opts.From != nil && opts.To != nil && opts.From.After(*opts.To) {
		lg.Warn("invalid argument: from after to")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.Criteria.MinimumScore < 0 || input.Criteria.MinimumScore > models.MaxScore {
		lg.Warn("invalid argument: minimum score out of range", "min_score", input.Criteria.MinimumScore)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	entries, err := s.entriesStorage.ListEntries(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on ListEntries", err))
	}

	if input.Criteria.IsZero() {
		return entries, nil
	}

	return analytics.Filter(entries, input.Criteria), nil
}

// buildUpdate нормализует вход: оценки ограничиваются [1, 10] (0 — по умолчанию),
// настроение канонизируется, теги дедуплицируются, фотографии упаковываются.
func buildUpdate(input SaveEntryInput) (storage.EntryUpdate, error) {
	var upd storage.EntryUpdate

	score := func(v *int) *int {
		if v == nil {
			return nil
		}
		c := models.ClampScore(*v)
		return &c
	}

	upd.QualityScore = score(input.QualityScore)
	upd.MoodScore = score(input.MoodScore)
	upd.EnergyScore = score(input.EnergyScore)
	upd.ProgressScore = score(input.ProgressScore)

	if input.Mood != nil {
		m := models.CanonicalMood(*input.Mood)
		upd.Mood = &m
	}

	if input.Activities != nil {
		a := tags.Normalize(*input.Activities)
		upd.Activities = &a
	}

	upd.MorningPlan = input.MorningPlan
	upd.EveningReflection = input.EveningReflection

	if input.Photos != nil {
		data, err := photos.Encode(input.Photos.Photos, input.Photos.ThumbnailIndex)
		if err != nil {
			return storage.EntryUpdate{}, err
		}
		upd.PhotoData = &data
	}

	return upd, nil
}

// SaveEntry создаёт или обновляет на месте запись дня.
//
// Поведение:
//   - AutoSave и записи за день ещё нет: если итоговая запись пустая (оценки по умолчанию,
//     пустые тексты, нет фото, настроение по умолчанию) — ErrNothingToSave, ничего не пишется;
//   - существующая запись обновляется всегда;
//   - ошибки стораджа — ErrInternal, отмена/дедлайн контекста — как есть
//     (транзакция откатывается на уровне хранилища).
func (s *Service) SaveEntry(ctx context.Context, input SaveEntryInput) (*models.DayEntry, error) {
	const op = "service/entries/SaveEntry"

	if input.Day.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	day := models.Day(input.Day)
	lg := log.From(ctx).With("op", op, "day", day.Format(models.DateLayout), "auto_save", input.AutoSave)

	if input.Photos != nil {
		if err := s.validatePhotos(input.Photos.Photos); err != nil {
			lg.Warn("invalid photos", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	upd, err := buildUpdate(input)
	if err != nil {
		lg.Error("encode photos", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if input.AutoSave {
		if upd.IsEmpty() {
			return nil, fmt.Errorf("%s: %w", op, ErrNothingToSave)
		}

		_, err := s.entriesStorage.EntryByDay(ctx, day)
		switch {
		case errors.Is(err, storage.ErrNotFoundEntry):
			draft := models.NewDayEntry(day, s.now())
			if err := upd.Apply(draft); err != nil {
				lg.Error("apply update to draft", "err", err)

				return nil, fmt.Errorf("%s: %w", op, ErrInternal)
			}

			if draft.IsEmpty() {
				lg.Debug("auto-save skipped: empty entry")

				return nil, fmt.Errorf("%s: %w", op, ErrNothingToSave)
			}
		case err != nil:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on EntryByDay", err))
		}
	}

	result, err := s.entriesStorage.UpsertEntry(ctx, day, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on UpsertEntry", err))
	}

	s.notifySaved(ctx, result)

	return result, nil
}

// ToggleTag добавляет тег в запись дня или убирает его, если он уже есть (без учёта регистра).
// Запись создаётся при необходимости.
func (s *Service) ToggleTag(ctx context.Context, day time.Time, tag string) (*models.DayEntry, error) {
	const op = "service/entries/ToggleTag"

	tag = strings.TrimSpace(tag)
	if day.IsZero() || tag == "" || strings.Contains(tag, ",") {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	day = models.Day(day)
	lg := log.From(ctx).With("op", op, "day", day.Format(models.DateLayout), "tag", tag)

	// Тег переключается над строкой, заблокированной в транзакции хранилища.
	upd := storage.EntryUpdate{Modify: func(e *models.DayEntry) error {
		e.Activities = tags.Toggle(tag, e.Activities)
		return nil
	}}

	result, err := s.entriesStorage.UpsertEntry(ctx, day, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on UpsertEntry", err))
	}

	s.notifySaved(ctx, result)

	return result, nil
}

// DeleteAllEntries необратимо удаляет все записи и возвращает их количество.
// Профиль не затрагивается.
func (s *Service) DeleteAllEntries(ctx context.Context) (int64, error) {
	const op = "service/entries/DeleteAllEntries"

	lg := log.From(ctx).With("op", op)

	n, err := s.entriesStorage.DeleteAllEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on DeleteAllEntries", err))
	}

	lg.Info("all entries deleted", "count", n)
	s.notifyDeleted(ctx, n)

	return n, nil
}
