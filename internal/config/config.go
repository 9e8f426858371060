// config предоставляет структуру конфигурации lifelog
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Поддерживаемые движки хранилища.
const (
	EnginePostgres = "postgres"
	EngineSQLite   = "sqlite"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Storage  StorageConfig `yaml:"storage"`
	S3       S3Config      `yaml:"s3"`
	Photos   PhotosConfig  `yaml:"photos"`
	Guide    GuideConfig   `yaml:"guide"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api/v1"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// StorageConfig — выбор движка и его параметры.
type StorageConfig struct {
	Engine   string         `yaml:"engine" env:"STORAGE_ENGINE" env-default:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"lifelog.db"`
}

// S3Config — архив фотографий. Необязателен: пустой endpoint отключает presigned-загрузки.
type S3Config struct {
	Endpoint     string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser     string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket       string        `yaml:"bucket" env:"S3_BUCKET"`
	PresignTTL   time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
}

// Enabled сообщает, что архив фотографий сконфигурирован.
func (s S3Config) Enabled() bool {
	return s.Endpoint != ""
}

type PhotosConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"PHOTOS_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"PHOTOS_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp,image/heic"`
}

// GuideConfig — генерация ежедневного гайда. Без api_key используется только шаблонный генератор.
type GuideConfig struct {
	APIKey string        `yaml:"api_key" env:"GUIDE_API_KEY"`
	Model  string        `yaml:"model" env:"GUIDE_MODEL" env-default:"gemini-2.0-flash"`
	Budget time.Duration `yaml:"budget" env:"GUIDE_BUDGET" env-default:"3s"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.S3.PresignTTL == 0 {
		c.S3.PresignTTL = 10 * time.Minute
	}

	if c.Photos.MaxSizeBytes == 0 {
		c.Photos.MaxSizeBytes = 10 * 1024 * 1024 // 10 MiB
	}

	if c.Timeouts.Service == 0 {
		c.Timeouts.Service = 5 * time.Second
	}

	if c.Timeouts.Shutdown == 0 {
		c.Timeouts.Shutdown = 10 * time.Second
	}

	c.Storage.Engine = strings.ToLower(strings.TrimSpace(c.Storage.Engine))
	switch c.Storage.Engine {
	case EnginePostgres:
		if c.Storage.Postgres.URL == "" {
			return fmt.Errorf("storage.postgres.url is required for engine %q", EnginePostgres)
		}
	case EngineSQLite:
		if c.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required for engine %q", EngineSQLite)
		}
	default:
		return fmt.Errorf("storage.engine must be %q or %q, got %q", EnginePostgres, EngineSQLite, c.Storage.Engine)
	}

	if c.HTTP.Host == "" {
		return fmt.Errorf("http.host is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	if c.HTTP.BasePath != "" && !strings.HasPrefix(c.HTTP.BasePath, "/") {
		return fmt.Errorf("http.base_path must start with '/'")
	}

	if c.S3.Enabled() {
		if c.S3.RootUser == "" {
			return fmt.Errorf("s3.root_user is required when s3.endpoint is set")
		}

		if c.S3.RootPassword == "" {
			return fmt.Errorf("s3.root_password is required when s3.endpoint is set")
		}

		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required when s3.endpoint is set")
		}
	}

	if c.S3.PresignTTL < 0 {
		return fmt.Errorf("s3.presign_ttl must be >= 0")
	}

	if c.Photos.MaxSizeBytes < 0 {
		return fmt.Errorf("photos.max_size_bytes must be >= 0")
	}

	if len(c.Photos.AllowedContentTypes) == 0 {
		return fmt.Errorf("photos.allowed_content_types must not be empty")
	}

	if c.Guide.Budget < 0 {
		return fmt.Errorf("guide.budget must be >= 0")
	}

	if c.Timeouts.Service < 0 || c.Timeouts.Shutdown < 0 {
		return fmt.Errorf("timeouts must be >= 0")
	}

	return nil
}
