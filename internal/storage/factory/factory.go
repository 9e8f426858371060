// factory выбирает реализацию хранилища по конфигурации.
package factory

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/storage"
	"github.com/pribylovaa/go-lifelog/internal/storage/postgres"
	"github.com/pribylovaa/go-lifelog/internal/storage/sqlite"
)

// Storage — хранилище с поддержкой миграций.
type Storage interface {
	storage.Storage
	Migrate(ctx context.Context) error
}

// NewByEngine открывает хранилище движка cfg.Engine.
// Для sqlite схема применяется сразу при открытии, для postgres — вызовом Migrate.
func NewByEngine(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	const op = "storage/factory/NewByEngine"

	switch cfg.Engine {
	case config.EngineSQLite:
		st, err := sqlite.New(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return st, nil
	case config.EnginePostgres:
		st, err := postgres.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%s: unsupported storage engine %q", op, cfg.Engine)
	}
}
