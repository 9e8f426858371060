package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/go-lifelog/internal/config"
	"github.com/pribylovaa/go-lifelog/internal/guide"
	lifeloghttp "github.com/pribylovaa/go-lifelog/internal/http"
	"github.com/pribylovaa/go-lifelog/internal/metrics"
	"github.com/pribylovaa/go-lifelog/internal/pkg/redact"
	"github.com/pribylovaa/go-lifelog/internal/service"
	"github.com/pribylovaa/go-lifelog/internal/storage"
	"github.com/pribylovaa/go-lifelog/internal/storage/factory"
	"github.com/pribylovaa/go-lifelog/internal/storage/minio"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting lifelog", "env", cfg.Env, "storage", cfg.Storage.Engine)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := factory.NewByEngine(dbCtx, cfg.Storage)
	if err == nil {
		err = store.Migrate(dbCtx)
	}
	dbCancel()
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
	defer store.Close()
	if cfg.Storage.Engine == config.EnginePostgres {
		log.Info("storage_ready", slog.String("engine", cfg.Storage.Engine), slog.String("dsn", redact.DSN(cfg.Storage.Postgres.URL)))
	} else {
		log.Info("storage_ready", slog.String("engine", cfg.Storage.Engine), slog.String("path", cfg.Storage.SQLite.Path))
	}

	// Архив фотографий необязателен: без s3.endpoint presign/confirm отвечают 503.
	var photosStore storage.PhotosStorage
	if cfg.S3.Enabled() {
		s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
		ps, err := minio.New(s3Ctx, cfg)
		s3Cancel()
		if err != nil {
			log.Error("minio_connect_failed", slog.String("err", err.Error()))
			store.Close()
			os.Exit(1)
		}
		photosStore = ps
		log.Info("minio_connected",
			slog.String("endpoint", cfg.S3.Endpoint),
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("user", cfg.S3.RootUser),
			slog.String("password", redact.Password()),
		)
	}

	gen := buildGenerator(rootCtx, cfg.Guide, log)

	m := metrics.New(prometheus.DefaultRegisterer)

	svc := service.New(store, store, photosStore, gen, cfg)
	svc.Subscribe(m)
	log.Info("service_initialized")

	apiHandler := lifeloghttp.NewRouter(svc, lifeloghttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
		Metrics:  m,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		store.Close()
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr), slog.String("base_path", cfg.HTTP.BasePath))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("lifelog_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// buildGenerator возвращает шаблонный генератор гайда,
// а при заданном api_key — GenAI с откатом на шаблоны.
func buildGenerator(ctx context.Context, cfg config.GuideConfig, log *slog.Logger) guide.Generator {
	templates := guide.Templates{}

	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Info("guide_templates_only")
		return templates
	}

	g, err := guide.NewGenAI(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Warn("guide_genai_init_failed", slog.String("err", err.Error()))
		return templates
	}

	log.Info("guide_genai_enabled",
		slog.String("model", cfg.Model),
		slog.String("api_key", redact.Secret(cfg.APIKey)),
		slog.Duration("budget", cfg.Budget),
	)

	return guide.WithFallback(g, templates, cfg.Budget)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
