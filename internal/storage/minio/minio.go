// minio — архив фотографий дня в MinIO/S3 (storage.PhotosStorage).
// Объекты лежат под префиксом дня; загрузка идёт клиентом напрямую по presigned PUT,
// сервис затем читает объект обратно и кладёт его в запись дня.
package minio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

// ErrBucketNotFound — бакет для фотографий не создан.
var ErrBucketNotFound = errors.New("photo bucket not found")

type PhotosStorage struct {
	s3     config.S3Config
	photos config.PhotosConfig
	client *mclient.Client
}

// parseEndpoint приводит s3.endpoint к виду host[:port], который ждёт minio-go.
// Без схемы соединение считается незащищённым.
func parseEndpoint(raw string) (host string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, err
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "", false, fmt.Errorf("unsupported scheme %q", u.Scheme)
	case u.Host == "":
		return "", false, errors.New("empty host")
	case strings.Trim(u.Path, "/") != "":
		return "", false, fmt.Errorf("endpoint must not contain a path: %q", u.Path)
	}

	return u.Host, u.Scheme == "https", nil
}

// New подключается к архиву и проверяет, что бакет для фотографий существует.
func New(ctx context.Context, cfg *config.Config) (*PhotosStorage, error) {
	const op = "storage/minio/New"

	host, secure, err := parseEndpoint(cfg.S3.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: s3.endpoint: %w", op, err)
	}

	client, err := mclient.New(host, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := client.BucketExists(ctx, cfg.S3.Bucket)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%s: %w", op, err)
	case !ok:
		return nil, fmt.Errorf("%s: %q: %w", op, cfg.S3.Bucket, ErrBucketNotFound)
	}

	return &PhotosStorage{s3: cfg.S3, photos: cfg.Photos, client: client}, nil
}

var _ storage.PhotosStorage = (*PhotosStorage)(nil)
