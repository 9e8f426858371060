package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — проверяют:
//    New: ошибку при отсутствии бакета;
//    PhotoUploadURL: presigned PUT и валидации по типу/размеру;
//    FetchPhoto: чтение загруженного объекта, ошибки на ключ другого дня и отсутствующий объект.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

const (
	rootUser     = "root"
	rootPassword = "rootpass"
	bucket       = "photos"
)

func startMinio(t *testing.T, createBucket bool) *config.Config {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image: "docker.io/minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds: credentials.NewStaticV4(rootUser, rootPassword, ""),
		})
		require.NoError(t, err)
		require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	return &config.Config{
		S3: config.S3Config{
			Endpoint:     fmt.Sprintf("http://%s:%s", host, port.Port()),
			RootUser:     rootUser,
			RootPassword: rootPassword,
			Bucket:       bucket,
			PresignTTL:   2 * time.Minute,
		},
		Photos: config.PhotosConfig{
			MaxSizeBytes:        1 << 20,
			AllowedContentTypes: []string{"image/png", "image/jpeg"},
		},
	}
}

func put(t *testing.T, ui *storage.UploadInfo, body []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPut, ui.UploadURL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", ui.RequiredHeader["Content-Type"])
	req.ContentLength = int64(len(body))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Less(t, resp.StatusCode, 300, "PUT must succeed")
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	cfg := startMinio(t, false)

	_, err := New(context.Background(), cfg)
	require.ErrorIs(t, err, ErrBucketNotFound)
}

func TestIntegration_UploadAndFetch_OK(t *testing.T) {
	cfg := startMinio(t, true)
	st, err := New(context.Background(), cfg)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	body := bytes.Repeat([]byte{0x42}, 7)

	ui, err := st.PhotoUploadURL(context.Background(), day, "image/png", int64(len(body)))
	require.NoError(t, err)
	require.Contains(t, ui.PhotoKey, "photos/2025-03-10/")
	require.True(t, strings.HasSuffix(ui.PhotoKey, ".png"))
	require.Equal(t, 2*time.Minute, ui.Expires)
	require.Equal(t, strconv.Itoa(len(body)), ui.RequiredHeader["Content-Length"])

	put(t, ui, body)

	got, err := st.FetchPhoto(context.Background(), day, ui.PhotoKey)
	require.NoError(t, err)
	require.Equal(t, body, got)
}

func TestIntegration_PhotoUploadURL_InvalidArgs(t *testing.T) {
	cfg := startMinio(t, true)
	st, err := New(context.Background(), cfg)
	require.NoError(t, err)

	day := time.Now()

	_, err = st.PhotoUploadURL(context.Background(), day, "image/gif", 10)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.PhotoUploadURL(context.Background(), day, "image/png", 0)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.PhotoUploadURL(context.Background(), day, "image/png", 2<<20)
	require.ErrorIs(t, err, storage.ErrInvalidArgument)
}

func TestIntegration_FetchPhoto_Errors(t *testing.T) {
	cfg := startMinio(t, true)
	st, err := New(context.Background(), cfg)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err = st.FetchPhoto(context.Background(), day, "photos/2025-03-11/x.png")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.FetchPhoto(context.Background(), day, "photos/2025-03-10/../2025-03-11/x.png")
	require.ErrorIs(t, err, storage.ErrInvalidArgument)

	_, err = st.FetchPhoto(context.Background(), day, "photos/2025-03-10/missing.png")
	require.ErrorIs(t, err, storage.ErrNotFoundPhoto)
}
