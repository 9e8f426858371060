package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFoundPhoto — объект (ключ) отсутствует в бакете.
	ErrNotFoundPhoto = errors.New("photo not found")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер/ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечная URL для PUT-запроса.
//   - PhotoKey: ключ (путь) будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT.
type UploadInfo struct {
	UploadURL      string
	PhotoKey       string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Photos — контракт архива фотографий дня.
type Photos interface {
	// PhotoUploadURL генерирует presigned PUT для фотографии дня day.
	// Внутри — валидация contentType и contentLength.
	PhotoUploadURL(ctx context.Context, day time.Time, contentType string, contentLength int64) (*UploadInfo, error)
	// FetchPhoto проверяет загруженный объект (принадлежность дню, тип, размер) и возвращает его содержимое.
	FetchPhoto(ctx context.Context, day time.Time, key string) ([]byte, error)
}

// PhotosStorage — алиас-обёртка для внедрения зависимости.
type PhotosStorage interface {
	Photos
}
