// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
// postgres.go — пул соединений и миграции;
// profiles.go — единственный профиль;
// entries.go — записи дней (чтение, диапазоны, upsert в транзакции, удаление всех).
package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/go-lifelog/internal/storage"
)

//go:embed migrations/*.up.sql
var migrations embed.FS

type Storage struct {
	db *pgxpool.Pool
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

// Migrate применяет встроенные *.up.sql миграции в порядке имён файлов.
// Миграции идемпотентны (CREATE ... IF NOT EXISTS).
func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage/postgres/Migrate"

	names, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if strings.TrimSpace(string(body)) == "" {
			continue
		}

		if _, err := s.db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("%s: %s: %w", op, name, err)
		}
	}

	return nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
