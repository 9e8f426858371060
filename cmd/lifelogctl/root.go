package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-lifelog/internal/config"
	logctx "github.com/pribylovaa/go-lifelog/internal/pkg/log"
	"github.com/pribylovaa/go-lifelog/internal/service"
	"github.com/pribylovaa/go-lifelog/internal/storage/factory"
)

// app — открытое хранилище и сервис поверх него на время одной команды.
type app struct {
	cfg   *config.Config
	store factory.Storage
	svc   *service.Service
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "lifelogctl",
		Short:         "Administrative tool for the lifelog storage",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (overrides CONFIG_PATH env)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	// open загружает конфигурацию и открывает хранилище; логгер кладётся в контекст команды.
	open := func(cmd *cobra.Command) (context.Context, *app, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}

		ctx := logctx.Into(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose))

		store, err := factory.NewByEngine(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, err
		}

		return ctx, &app{
			cfg:   cfg,
			store: store,
			svc:   service.New(store, store, nil, nil, cfg),
		}, nil
	}

	root.AddCommand(
		newMigrateCmd(open),
		newExportCmd(open),
		newPurgeCmd(open),
		newExpectancyCmd(open),
	)

	return root
}

type opener func(cmd *cobra.Command) (context.Context, *app, error)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newMigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the storage schema (idempotent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", a.cfg.Storage.Engine)
			return nil
		},
	}
}

// createFile открывает файл для записи; "-" или пустая строка — stdout команды.
func createFile(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}

	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
