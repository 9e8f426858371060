// service содержит бизнес-логику lifelog:
// - профиль и оценка ожидаемой продолжительности жизни;
// - записи дней (автосохранение, теги, выборки с фильтрами, удаление всех);
// - фотографии дня (payload в записи, presigned-загрузка в S3/MinIO);
// - аналитика (тренды, распределение, серии, сводка) и ежедневный гайд.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/guide"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — профиль уже создан.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNothingToSave — автосохранение пустой записи пропущено.
	ErrNothingToSave = errors.New("nothing to save")
	// ErrUnavailable — возможность не сконфигурирована (например, архив фотографий).
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal — внутренняя ошибка сервиса.
	ErrInternal = errors.New("internal")
)

// Observer получает уведомления об изменении записей.
// Вызовы синхронные и происходят после успешной фиксации в хранилище.
type Observer interface {
	EntrySaved(ctx context.Context, entry *models.DayEntry)
	EntriesDeleted(ctx context.Context, n int64)
}

// Service — описывает бизнес-логику lifelog.
type Service struct {
	cfg             *config.Config
	profilesStorage storage.ProfilesStorage
	entriesStorage  storage.EntriesStorage
	photosStorage   storage.PhotosStorage
	generator       guide.Generator
	observers       []Observer
	now             func() time.Time
}

// New создает новый экземпляр Service.
// photosStorage может быть nil — тогда presigned-загрузки возвращают ErrUnavailable.
// generator == nil заменяется шаблонным генератором.
func New(
	profilesStorage storage.ProfilesStorage,
	entriesStorage storage.EntriesStorage,
	photosStorage storage.PhotosStorage,
	generator guide.Generator,
	cfg *config.Config,
) *Service {
	if generator == nil {
		generator = guide.Templates{}
	}

	return &Service{
		cfg:             cfg,
		profilesStorage: profilesStorage,
		entriesStorage:  entriesStorage,
		photosStorage:   photosStorage,
		generator:       generator,
		now:             time.Now,
	}
}

// Subscribe регистрирует наблюдателя. Вызывается до начала обслуживания запросов.
func (s *Service) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

func (s *Service) notifySaved(ctx context.Context, e *models.DayEntry) {
	for _, o := range s.observers {
		o.EntrySaved(ctx, e)
	}
}

func (s *Service) notifyDeleted(ctx context.Context, n int64) {
	for _, o := range s.observers {
		o.EntriesDeleted(ctx, n)
	}
}

// Now возвращает текущее время по часам сервиса.
func (s *Service) Now() time.Time {
	return s.now()
}

// today — текущий день по часам сервиса.
func (s *Service) today() time.Time {
	return models.Day(s.now())
}

// refOrToday усекает ref до дня; нулевое значение заменяется сегодняшним днём.
func (s *Service) refOrToday(ref time.Time) time.Time {
	if ref.IsZero() {
		return s.today()
	}

	return models.Day(ref)
}

// storageErr логирует ошибку хранилища и переводит её в ошибку сервиса.
// Отмена и истечение дедлайна контекста сохраняются как есть, остальное — ErrInternal.
func storageErr(lg *slog.Logger, msg string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		lg.Warn(msg, "err", err)

		return context.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		lg.Warn(msg, "err", err)

		return context.Canceled
	default:
		lg.Error(msg, "err", err)

		return ErrInternal
	}
}
