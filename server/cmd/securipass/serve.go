package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Orsy-git/securiPass/server/internal/api"
	"github.com/Orsy-git/securiPass/server/internal/config"
	"github.com/Orsy-git/securiPass/server/internal/password"
	"github.com/Orsy-git/securiPass/server/internal/store"
	"github.com/Orsy-git/securiPass/server/internal/ws"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web page, JSON API and live state stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.HTTPPort = port
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, cfg, configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (defaults apply when empty)")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultHTTPPort, "HTTP port, overrides server.http_port")
	return cmd
}

// serve runs the HTTP server, the WebSocket hub and, when configPath is set,
// the config watcher until ctx is cancelled or one of them fails.
func serve(ctx context.Context, cfg *config.Config, configPath string) error {
	level := new(slog.LevelVar)
	level.Set(cfg.Log.SlogLevel())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("securipass starting",
		"config", configPath,
		"http_port", cfg.Server.HTTPPort,
		"history_size", cfg.History.Size,
		"log_level", level.Level().String(),
	)

	st := store.New(cfg.History.Size)
	handler := api.New(st, password.NewGenerator(nil), cfg)
	hub := ws.New(st, cfg.Server.WSInterval)

	mux := http.NewServeMux()
	mux.Handle("/ws/stream", hub)
	mux.Handle("/", handler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("securipass shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if configPath != "" {
		g.Go(func() error {
			err := config.Watch(gctx, configPath, func(updated *config.Config) {
				level.Set(updated.Log.SlogLevel())
				handler.Reload(updated)
			})
			if err != nil {
				// Serving continues with the config loaded at startup.
				slog.Error("config watcher stopped", "err", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("securipass stopped", "err", err)
		return err
	}
	return nil
}
