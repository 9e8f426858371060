package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/photos"
	"github.com/pribylovaa/go-lifelog/internal/storage"
	"github.com/pribylovaa/go-lifelog/mocks"
)

// entryWithPhotos — запись дня с упакованными фотографиями.
func entryWithPhotos(t *testing.T, s string, list [][]byte, thumb *int) *models.DayEntry {
	t.Helper()

	data, err := photos.Encode(list, thumb)
	require.NoError(t, err)

	e := entryOn(s, 7)
	e.PhotoData = data

	return &e
}

func TestService_DayPhotos(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	deps.entries.EXPECT().EntryByDay(gomock.Any(), day("2025-03-09")).
		Return(entryWithPhotos(t, "2025-03-09", [][]byte{{1}, {2}, {3}}, ptr(2)), nil)

	p, err := s.DayPhotos(context.Background(), day("2025-03-09"))
	require.NoError(t, err)
	require.Equal(t, 3, p.Len())
	require.Equal(t, []byte{3}, p.Thumbnail())

	deps.entries.EXPECT().EntryByDay(gomock.Any(), day("2025-03-08")).Return(nil, storage.ErrNotFoundEntry)
	p, err = s.DayPhotos(context.Background(), day("2025-03-08"))
	require.NoError(t, err, "нет записи — пустой список, не ошибка")
	require.Zero(t, p.Len())

	deps.entries.EXPECT().EntryByDay(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = s.DayPhotos(context.Background(), day("2025-03-07"))
	require.ErrorIs(t, err, ErrInternal)

	_, err = s.DayPhotos(context.Background(), time.Time{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_DayPhoto(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	deps.entries.EXPECT().EntryByDay(gomock.Any(), gomock.Any()).
		Return(entryWithPhotos(t, "2025-03-09", [][]byte{{1}, {2}}, nil), nil).
		Times(3)

	got, err := s.DayPhoto(context.Background(), day("2025-03-09"), 1)
	require.NoError(t, err)
	require.Equal(t, []byte{2}, got)

	_, err = s.DayPhoto(context.Background(), day("2025-03-09"), 2)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.DayPhoto(context.Background(), day("2025-03-09"), -1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_DayThumbnail(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	// Одна фотография без выбранной миниатюры хранится как есть.
	deps.entries.EXPECT().EntryByDay(gomock.Any(), day("2025-03-09")).
		Return(entryWithPhotos(t, "2025-03-09", [][]byte{{9, 9}}, nil), nil)

	got, err := s.DayThumbnail(context.Background(), day("2025-03-09"))
	require.NoError(t, err)
	require.Equal(t, []byte{9, 9}, got)

	empty := entryOn("2025-03-08", 5)
	deps.entries.EXPECT().EntryByDay(gomock.Any(), day("2025-03-08")).Return(&empty, nil)

	_, err = s.DayThumbnail(context.Background(), day("2025-03-08"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_SetDayPhotos(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	deps.entries.EXPECT().
		UpsertEntry(gomock.Any(), day("2025-03-10"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d time.Time, u storage.EntryUpdate) (*models.DayEntry, error) {
			require.NotNil(t, u.PhotoData)
			require.Nil(t, u.QualityScore)

			return upsertEcho(ctx, d, u)
		})

	got, err := s.SetDayPhotos(context.Background(), fixedNow, [][]byte{{1}, {2}}, ptr(0))
	require.NoError(t, err)

	p := photos.Decode(got.PhotoData)
	require.Equal(t, [][]byte{{1}, {2}}, p.Photos)
	require.Equal(t, 0, *p.ThumbnailIndex)

	// Пустой список очищает фотографии.
	deps.entries.EXPECT().
		UpsertEntry(gomock.Any(), day("2025-03-10"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d time.Time, u storage.EntryUpdate) (*models.DayEntry, error) {
			require.NotNil(t, u.PhotoData)
			require.Empty(t, *u.PhotoData)

			return upsertEcho(ctx, d, u)
		})

	got, err = s.SetDayPhotos(context.Background(), fixedNow, nil, nil)
	require.NoError(t, err)
	require.Empty(t, got.PhotoData)

	// Лимит размера в тестовой конфигурации — 16 байт.
	_, err = s.SetDayPhotos(context.Background(), fixedNow, [][]byte{make([]byte, 32)}, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_RemoveDayPhoto(t *testing.T) {
	s, deps := newServiceWithMocks(t)
	obs := &recordingObserver{}
	s.Subscribe(obs)

	deps.entries.EXPECT().
		UpsertEntry(gomock.Any(), day("2025-03-09"), gomock.Any()).
		DoAndReturn(upsertOnto(entryWithPhotos(t, "2025-03-09", [][]byte{{1}, {2}, {3}}, ptr(2))))

	got, err := s.RemoveDayPhoto(context.Background(), day("2025-03-09"), 0)
	require.NoError(t, err)

	p := photos.Decode(got.PhotoData)
	require.Equal(t, [][]byte{{2}, {3}}, p.Photos)
	require.Equal(t, 1, *p.ThumbnailIndex, "миниатюра сдвигается вслед за удалением")
	require.Len(t, obs.saved, 1)

	deps.entries.EXPECT().
		UpsertEntry(gomock.Any(), day("2025-03-09"), gomock.Any()).
		DoAndReturn(upsertOnto(entryWithPhotos(t, "2025-03-09", [][]byte{{1}}, nil)))

	_, err = s.RemoveDayPhoto(context.Background(), day("2025-03-09"), 3)
	require.ErrorIs(t, err, ErrNotFound)
	require.Len(t, obs.saved, 1, "неудачное удаление не уведомляет наблюдателей")

	_, err = s.RemoveDayPhoto(context.Background(), time.Time{}, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_PhotoUploadURL(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	info := &storage.UploadInfo{
		UploadURL:      "http://minio/photos/2025-03-10/a.jpg?sig",
		PhotoKey:       "photos/2025-03-10/a.jpg",
		Expires:        10 * time.Minute,
		RequiredHeader: map[string]string{"Content-Type": "image/jpeg"},
	}

	deps.photos.EXPECT().
		PhotoUploadURL(gomock.Any(), day("2025-03-10"), "image/jpeg", int64(1024)).
		Return(info, nil)

	got, err := s.PhotoUploadURL(context.Background(), PhotoUploadURLInput{
		Day: fixedNow, ContentType: "image/jpeg", ContentLength: 1024,
	})
	require.NoError(t, err)
	require.Equal(t, info, got)

	deps.photos.EXPECT().PhotoUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("wrap: %w", storage.ErrInvalidArgument))
	_, err = s.PhotoUploadURL(context.Background(), PhotoUploadURLInput{
		Day: fixedNow, ContentType: "image/gif", ContentLength: 1024,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	deps.photos.EXPECT().PhotoUploadURL(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("s3 down"))
	_, err = s.PhotoUploadURL(context.Background(), PhotoUploadURLInput{
		Day: fixedNow, ContentType: "image/jpeg", ContentLength: 1024,
	})
	require.ErrorIs(t, err, ErrInternal)

	_, err = s.PhotoUploadURL(context.Background(), PhotoUploadURLInput{Day: fixedNow, ContentType: "image/jpeg"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_ConfirmPhotoUpload(t *testing.T) {
	s, deps := newServiceWithMocks(t)

	const key = "photos/2025-03-10/a.jpg"

	gomock.InOrder(
		deps.photos.EXPECT().FetchPhoto(gomock.Any(), day("2025-03-10"), key).Return([]byte{7, 7}, nil),
		deps.entries.EXPECT().UpsertEntry(gomock.Any(), day("2025-03-10"), gomock.Any()).
			DoAndReturn(upsertOnto(entryWithPhotos(t, "2025-03-10", [][]byte{{1}}, nil))),
	)

	got, err := s.ConfirmPhotoUpload(context.Background(), ConfirmPhotoUploadInput{Day: fixedNow, PhotoKey: key})
	require.NoError(t, err)
	require.Equal(t, [][]byte{{1}, {7, 7}}, photos.Decode(got.PhotoData).Photos)
}

func TestService_ConfirmPhotoUpload_Errors(t *testing.T) {
	cases := []struct {
		name    string
		fetch   error
		wantErr error
	}{
		{"invalid key", fmt.Errorf("x: %w", storage.ErrInvalidArgument), ErrInvalidArgument},
		{"object missing", fmt.Errorf("x: %w", storage.ErrNotFoundPhoto), ErrNotFound},
		{"s3 failure", errors.New("boom"), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, deps := newServiceWithMocks(t)
			deps.photos.EXPECT().FetchPhoto(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.fetch)

			_, err := s.ConfirmPhotoUpload(context.Background(), ConfirmPhotoUploadInput{Day: fixedNow, PhotoKey: "k"})
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_PhotoArchiveDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(
		mocks.NewMockProfilesStorage(ctrl),
		mocks.NewMockEntriesStorage(ctrl),
		nil,
		nil,
		&config.Config{},
	)

	_, err := s.PhotoUploadURL(context.Background(), PhotoUploadURLInput{
		Day: fixedNow, ContentType: "image/jpeg", ContentLength: 1,
	})
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = s.ConfirmPhotoUpload(context.Background(), ConfirmPhotoUploadInput{Day: fixedNow, PhotoKey: "k"})
	require.ErrorIs(t, err, ErrUnavailable)
}
