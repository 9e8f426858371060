package service

// Тесты сервисного слоя lifelog.
//
//  Проверяем:
//  - валидацию входов;
//  - маппинг ошибок storage -> service (InvalidArgument / NotFound / AlreadyExists / Internal);
//  - нормализацию записи перед сохранением (оценки, настроение, теги, фото);
//  - правило автосохранения пустых записей;
//  - уведомления наблюдателей;
//  - happy-path каждого метода.
//
// Моки — в пакете /mocks (MockProfilesStorage, MockEntriesStorage, MockPhotosStorage).

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/mocks"
)

// fixedNow — «сейчас» во всех тестах сервиса.
var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

type testDeps struct {
	profiles *mocks.MockProfilesStorage
	entries  *mocks.MockEntriesStorage
	photos   *mocks.MockPhotosStorage
}

func newServiceWithMocks(t *testing.T) (*Service, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		profiles: mocks.NewMockProfilesStorage(ctrl),
		entries:  mocks.NewMockEntriesStorage(ctrl),
		photos:   mocks.NewMockPhotosStorage(ctrl),
	}

	cfg := &config.Config{Photos: config.PhotosConfig{MaxSizeBytes: 16}}
	s := New(deps.profiles, deps.entries, deps.photos, nil, cfg)
	s.now = func() time.Time { return fixedNow }

	return s, deps
}

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	d, err := models.ParseDay(s)
	if err != nil {
		panic(err)
	}

	return d
}

func entryOn(s string, quality int) models.DayEntry {
	e := models.NewDayEntry(day(s), fixedNow)
	e.QualityScore = quality
	return *e
}

// recordingObserver — наблюдатель, запоминающий события.
type recordingObserver struct {
	saved   []*models.DayEntry
	deleted []int64
}

func (o *recordingObserver) EntrySaved(_ context.Context, e *models.DayEntry) {
	o.saved = append(o.saved, e)
}

func (o *recordingObserver) EntriesDeleted(_ context.Context, n int64) {
	o.deleted = append(o.deleted, n)
}
