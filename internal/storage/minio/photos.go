package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// dayPrefix — префикс ключей фотографий дня: "photos/<YYYY-MM-DD>/".
func dayPrefix(day time.Time) string {
	return "photos/" + models.Day(day).Format(models.DateLayout) + "/"
}

// PhotoUploadURL генерирует presigned PUT URL для фотографии дня.
// Ключ имеет вид "photos/<YYYY-MM-DD>/<uuid>.<ext>"; RequiredHeader клиент обязан передать при PUT.
func (s *PhotosStorage) PhotoUploadURL(ctx context.Context, day time.Time, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/photos/PhotoUploadURL"

	if contentLength <= 0 || contentLength > s.photos.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !slices.Contains(s.photos.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	key := path.Join(dayPrefix(day), uuid.NewString()+extensions[contentType])

	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		PhotoKey:  key,
		Expires:   s.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(contentLength, 10),
		},
	}, nil
}

// FetchPhoto проверяет, что объект key принадлежит дню day, существует и
// удовлетворяет ограничениям размера/типа, и возвращает его содержимое.
func (s *PhotosStorage) FetchPhoto(ctx context.Context, day time.Time, key string) ([]byte, error) {
	const op = "storage/minio/photos/FetchPhoto"

	if !strings.HasPrefix(key, dayPrefix(day)) || strings.Contains(key, "..") {
		return nil, storage.ErrInvalidArgument
	}

	info, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil, storage.ErrNotFoundPhoto
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 || info.Size > s.photos.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if ct := info.ContentType; ct != "" && !slices.Contains(s.photos.AllowedContentTypes, ct) {
		return nil, storage.ErrInvalidArgument
	}

	obj, err := s.client.GetObject(ctx, s.s3.Bucket, key, mclient.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, s.photos.MaxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if int64(len(data)) != info.Size {
		return nil, fmt.Errorf("%s: size mismatch: stat %d, read %d", op, info.Size, len(data))
	}

	return data, nil
}
