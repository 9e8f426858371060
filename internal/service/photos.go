package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/photos"
	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

type PhotoUploadURLInput struct {
	Day           time.Time
	ContentType   string
	ContentLength int64
}

type ConfirmPhotoUploadInput struct {
	Day      time.Time
	PhotoKey string
}

var (
	errEmptyPhoto      = errors.New("empty photo")
	errPhotoOutOfRange = errors.New("photo index out of range")
)

// validatePhotos проверяет, что фотографии непустые и не превышают лимит размера.
func (s *Service) validatePhotos(list [][]byte) error {
	for i, p := range list {
		if len(p) == 0 {
			return fmt.Errorf("photo %d: %w", i, errEmptyPhoto)
		}

		if s.cfg != nil && s.cfg.Photos.MaxSizeBytes > 0 && int64(len(p)) > s.cfg.Photos.MaxSizeBytes {
			return fmt.Errorf("photo %d: %d bytes exceeds limit %d", i, len(p), s.cfg.Photos.MaxSizeBytes)
		}
	}

	return nil
}

// payload загружает и раскодирует фотографии дня. Нет записи — пустой payload.
func (s *Service) payload(ctx context.Context, day time.Time) (photos.Payload, error) {
	entry, err := s.entriesStorage.EntryByDay(ctx, day)
	if err != nil {
		if errors.Is(err, storage.ErrNotFoundEntry) {
			return photos.Payload{}, nil
		}

		return photos.Payload{}, err
	}

	return photos.Decode(entry.PhotoData), nil
}

// DayPhotos возвращает фотографии дня. Отсутствие записи — пустой результат, не ошибка.
func (s *Service) DayPhotos(ctx context.Context, day time.Time) (photos.Payload, error) {
	const op = "service/photos/DayPhotos"

	if day.IsZero() {
		return photos.Payload{}, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	day = models.Day(day)

	p, err := s.payload(ctx, day)
	if err != nil {
		return photos.Payload{}, fmt.Errorf("%s: %w", op, storageErr(log.From(ctx).With("op", op), "storage error on EntryByDay", err))
	}

	return p, nil
}

// DayPhoto возвращает фотографию дня по индексу.
func (s *Service) DayPhoto(ctx context.Context, day time.Time, index int) ([]byte, error) {
	const op = "service/photos/DayPhoto"

	p, err := s.DayPhotos(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if index < 0 || index >= p.Len() {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return p.Photos[index], nil
}

// DayThumbnail возвращает миниатюру дня для календаря: выбранную, иначе первую фотографию.
func (s *Service) DayThumbnail(ctx context.Context, day time.Time) ([]byte, error) {
	const op = "service/photos/DayThumbnail"

	p, err := s.DayPhotos(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	thumb := p.Thumbnail()
	if thumb == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return thumb, nil
}

// SetDayPhotos заменяет фотографии дня. Пустой список очищает их.
func (s *Service) SetDayPhotos(ctx context.Context, day time.Time, list [][]byte, thumbnail *int) (*models.DayEntry, error) {
	const op = "service/photos/SetDayPhotos"

	result, err := s.SaveEntry(ctx, SaveEntryInput{
		Day:    day,
		Photos: &PhotosInput{Photos: list, ThumbnailIndex: thumbnail},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RemoveDayPhoto удаляет фотографию по индексу; миниатюра сдвигается или сбрасывается.
// Индекс вне диапазона — ErrNotFound, запись не меняется.
func (s *Service) RemoveDayPhoto(ctx context.Context, day time.Time, index int) (*models.DayEntry, error) {
	const op = "service/photos/RemoveDayPhoto"

	if day.IsZero() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return s.updatePhotos(ctx, op, day, func(p photos.Payload) (photos.Payload, error) {
		if index < 0 || index >= p.Len() {
			return p, fmt.Errorf("index %d of %d: %w", index, p.Len(), errPhotoOutOfRange)
		}

		return p.RemoveAt(index), nil
	})
}

// updatePhotos меняет фотографии дня внутри транзакции UpsertEntry:
// fn получает payload строки, заблокированной хранилищем.
func (s *Service) updatePhotos(
	ctx context.Context,
	op string,
	day time.Time,
	fn func(p photos.Payload) (photos.Payload, error),
) (*models.DayEntry, error) {
	day = models.Day(day)
	lg := log.From(ctx).With("op", op, "day", day.Format(models.DateLayout))

	upd := storage.EntryUpdate{Modify: func(e *models.DayEntry) error {
		p, err := fn(photos.Decode(e.PhotoData))
		if err != nil {
			return err
		}

		data, err := p.Encode()
		if err != nil {
			return err
		}
		e.PhotoData = data

		return nil
	}}

	result, err := s.entriesStorage.UpsertEntry(ctx, day, upd)
	if err != nil {
		if errors.Is(err, errPhotoOutOfRange) {
			lg.Warn("photo index out of range", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on UpsertEntry", err))
	}

	s.notifySaved(ctx, result)

	return result, nil
}

// PhotoUploadURL выдаёт presigned PUT URL для загрузки фотографии дня в S3/MinIO.
//
// Поведение:
//   - архив не сконфигурирован — ErrUnavailable;
//   - нарушены ограничения типа/размера — ErrInvalidArgument;
//   - прочие ошибки S3 — ErrInternal.
func (s *Service) PhotoUploadURL(ctx context.Context, input PhotoUploadURLInput) (*storage.UploadInfo, error) {
	const op = "service/photos/PhotoUploadURL"

	lg := log.From(ctx).With("op", op)

	if s.photosStorage == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	if input.Day.IsZero() || strings.TrimSpace(input.ContentType) == "" || input.ContentLength <= 0 {
		lg.Warn("invalid argument for presign", "content_type", input.ContentType, "content_length", input.ContentLength)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.photosStorage.PhotoUploadURL(ctx, models.Day(input.Day), input.ContentType, input.ContentLength)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("validation failed in storage", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on PhotoUploadURL", err))
		}
	}

	return result, nil
}

// ConfirmPhotoUpload подтверждает загрузку: объект читается из архива
// и добавляется в конец фотографий дня.
//
// Поведение/ошибки:
//   - ErrUnavailable — архив не сконфигурирован;
//   - ErrInvalidArgument — ключ другого дня или нарушены ограничения;
//   - ErrNotFound — объект в бакете не найден;
//   - ErrInternal — прочие ошибки.
func (s *Service) ConfirmPhotoUpload(ctx context.Context, input ConfirmPhotoUploadInput) (*models.DayEntry, error) {
	const op = "service/photos/ConfirmPhotoUpload"

	lg := log.From(ctx).With("op", op, "photo_key", input.PhotoKey)

	if s.photosStorage == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	if input.Day.IsZero() || strings.TrimSpace(input.PhotoKey) == "" {
		lg.Warn("invalid argument for confirm")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	day := models.Day(input.Day)

	data, err := s.photosStorage.FetchPhoto(ctx, day, input.PhotoKey)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid photo key or attributes", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrNotFoundPhoto):
			lg.Warn("photo object not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on FetchPhoto", err))
		}
	}

	return s.updatePhotos(ctx, op, day, func(p photos.Payload) (photos.Payload, error) {
		return p.Append(data), nil
	})
}
