// sqlite предоставляет встраиваемую реализацию storage.Storage на базе SQLite
// (modernc.org/sqlite, без cgo). Используется для локального однопользовательского режима.
// sqlite.go — открытие файла, PRAGMA, схема;
// profiles.go — единственный профиль;
// entries.go — записи дней.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

//go:embed migrations/1_init.sql
var schema string

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA synchronous = NORMAL",
}

type Storage struct {
	db  *sql.DB
	now func() time.Time
}

// New открывает (или создаёт) файл базы, настраивает соединение и применяет схему.
// Запись в SQLite однопоточна, поэтому пул ограничен одним соединением.
func New(ctx context.Context, path string) (*Storage, error) {
	const op = "storage/sqlite/New"

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %s: %w", op, p, err)
		}
	}

	s := &Storage{db: db, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Migrate применяет встроенную схему. Повторный вызов безопасен.
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage/sqlite/Migrate"

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает базу.
func (s *Storage) Close() {
	_ = s.db.Close()
}

func toDate(t time.Time) string {
	return models.Day(t).Format(models.DateLayout)
}

func fromDate(v string) (time.Time, error) {
	return time.Parse(models.DateLayout, v)
}

func toTS(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fromTS(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}

	return t
}

func boolToInt(v bool) int {
	if v {
		return 1
	}

	return 0
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
