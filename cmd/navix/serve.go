package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/navix-rl/navix/internal/handlers/ws"
	episodesvc "github.com/navix-rl/navix/internal/orchestrators/episode"
	"github.com/navix-rl/navix/internal/pkg/clock"
	"github.com/navix-rl/navix/internal/pkg/idgen"
	redisclient "github.com/navix-rl/navix/internal/redis"
	episoderepo "github.com/navix-rl/navix/internal/repositories/episode"
)

var (
	servePort  int
	serveRedis string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket episode server",
	Long:  `Start the websocket server that drives episode sessions persisted in Redis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "HTTP listen port")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "Redis endpoint (defaults to $REDIS_ADDR or localhost:6379)")
}

func runServe(cmd *cobra.Command, args []string) error {
	endpoint := serveRedis
	if endpoint == "" {
		endpoint = os.Getenv("REDIS_ADDR")
	}
	if endpoint == "" {
		endpoint = "localhost:6379"
	}

	client, err := redisclient.NewClient(endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := episoderepo.NewRedisRepository(&episoderepo.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create episode repository: %w", err)
	}

	service, err := episodesvc.NewOrchestrator(&episodesvc.Config{
		EpisodeRepo: repo,
		IDGenerator: idgen.NewUUID("ep"),
	})
	if err != nil {
		return fmt.Errorf("failed to create episode service: %w", err)
	}

	handler, err := ws.NewHandler(&ws.HandlerConfig{EpisodeService: service})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/play", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", servePort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", servePort, "redis", endpoint)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("received shutdown signal, gracefully stopping", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
