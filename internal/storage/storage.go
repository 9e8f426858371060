// storage содержит контракты слоя хранилищ lifelog.
//
// storage.go — профиль и записи дней в БД (PostgreSQL или встраиваемый SQLite).
// photos.go — контракт архива фотографий в S3/MinIO.
package storage

//go:generate mockgen -destination=../../mocks/storage_mock.go -package=mocks github.com/pribylovaa/go-lifelog/internal/storage EntriesStorage,PhotosStorage,ProfilesStorage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
)

var (
	// ErrNotFoundProfile — профиль ещё не создан.
	ErrNotFoundProfile = errors.New("profile not found")
	// ErrNotFoundEntry — записи за день нет.
	ErrNotFoundEntry = errors.New("entry not found")
	// ErrAlreadyExists — профиль уже существует (допускается только один).
	ErrAlreadyExists = errors.New("already exists")
)

// EntryUpdate — частичное обновление записи дня.
// Обновляются только непустые указатели. PhotoData, указывающий на nil, очищает фотографии.
// Modify выполняется последним над строкой, прочитанной внутри транзакции UpsertEntry;
// его ошибка откатывает транзакцию и возвращается вызывающему в цепочке.
type EntryUpdate struct {
	QualityScore      *int
	MoodScore         *int
	EnergyScore       *int
	ProgressScore     *int
	Mood              *string
	Activities        *string
	MorningPlan       *string
	EveningReflection *string
	PhotoData         *[]byte
	Modify            func(e *models.DayEntry) error
}

// IsEmpty сообщает, что обновление не меняет ни одного поля.
func (u EntryUpdate) IsEmpty() bool {
	return u.QualityScore == nil && u.MoodScore == nil && u.EnergyScore == nil &&
		u.ProgressScore == nil && u.Mood == nil && u.Activities == nil &&
		u.MorningPlan == nil && u.EveningReflection == nil && u.PhotoData == nil &&
		u.Modify == nil
}

// Apply переносит заданные поля в запись и вызывает Modify. Date и CreatedAt не трогаются.
func (u EntryUpdate) Apply(e *models.DayEntry) error {
	if u.QualityScore != nil {
		e.QualityScore = *u.QualityScore
	}
	if u.MoodScore != nil {
		e.MoodScore = *u.MoodScore
	}
	if u.EnergyScore != nil {
		e.EnergyScore = *u.EnergyScore
	}
	if u.ProgressScore != nil {
		e.ProgressScore = *u.ProgressScore
	}
	if u.Mood != nil {
		e.Mood = *u.Mood
	}
	if u.Activities != nil {
		e.Activities = *u.Activities
	}
	if u.MorningPlan != nil {
		e.MorningPlan = *u.MorningPlan
	}
	if u.EveningReflection != nil {
		e.EveningReflection = *u.EveningReflection
	}
	if u.PhotoData != nil {
		e.PhotoData = *u.PhotoData
	}

	if u.Modify != nil {
		return u.Modify(e)
	}

	return nil
}

// Profiles — контракт хранилища профиля.
type Profiles interface {
	// Profile возвращает единственный профиль или ErrNotFoundProfile.
	Profile(ctx context.Context) (*models.Profile, error)
	// CreateProfile создаёт профиль. Если профиль уже есть — ErrAlreadyExists.
	CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// Entries — контракт хранилища записей дней.
type Entries interface {
	// EntryByDay возвращает запись за день (дата усекается) или ErrNotFoundEntry.
	EntryByDay(ctx context.Context, day time.Time) (*models.DayEntry, error)
	// ListEntries возвращает записи в диапазоне дат, отсортированные по дате.
	ListEntries(ctx context.Context, opts models.ListOptions) ([]models.DayEntry, error)
	// UpsertEntry обновляет запись за день на месте или создаёт новую с значениями по умолчанию.
	// Чтение и запись выполняются в одной транзакции; при ошибке изменения откатываются.
	UpsertEntry(ctx context.Context, day time.Time, update EntryUpdate) (*models.DayEntry, error)
	// DeleteAllEntries удаляет все записи и возвращает их количество. Необратимо.
	DeleteAllEntries(ctx context.Context) (int64, error)
}

// ProfilesStorage — верхнеуровневый интерфейс хранилища профиля.
type ProfilesStorage interface {
	Profiles
}

// EntriesStorage — верхнеуровневый интерфейс хранилища записей.
type EntriesStorage interface {
	Entries
}

// Storage — хранилище целиком, как его отдают конструкторы движков.
type Storage interface {
	Profiles
	Entries
	Close()
}
