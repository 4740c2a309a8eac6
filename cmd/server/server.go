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

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/creaturelab/creature-api/internal/clients/catalog"
	"github.com/creaturelab/creature-api/internal/clients/styler"
	creaturehandler "github.com/creaturelab/creature-api/internal/handlers/creature"
	"github.com/creaturelab/creature-api/internal/handlers/health"
	"github.com/creaturelab/creature-api/internal/handlers/middleware"
	creatureorch "github.com/creaturelab/creature-api/internal/orchestrators/creature"
	"github.com/creaturelab/creature-api/internal/pkg/idgen"
)

var (
	httpPort        int
	catalogURL      string
	mysticURL       string
	bardURL         string
	upstreamTimeout time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the creature API HTTP server with all configured upstream clients.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", envInt("PORT", 8080), "HTTP server port")
	serverCmd.Flags().StringVar(&catalogURL, "catalog-url",
		envOr("CATALOG_BASE_URL", "https://catalog.creaturelab.dev/api/v2"),
		"base URL of the species catalog service")
	serverCmd.Flags().StringVar(&mysticURL, "mystic-url",
		envOr("STYLE_MYSTIC_BASE_URL", "https://styles.creaturelab.dev/mystic"),
		"endpoint of the mystic style-transform service")
	serverCmd.Flags().StringVar(&bardURL, "bard-url",
		envOr("STYLE_BARD_BASE_URL", "https://styles.creaturelab.dev/bard"),
		"endpoint of the bard style-transform service")
	serverCmd.Flags().DurationVar(&upstreamTimeout, "upstream-timeout", 30*time.Second,
		"per-request timeout for every upstream call")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	router, err := buildRouter()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", httpPort),
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// buildRouter wires the upstream clients, the orchestrator, and the HTTP
// surface together.
func buildRouter() (*gin.Engine, error) {
	catalogClient, err := catalog.New(&catalog.Config{
		BaseURL:     catalogURL,
		HTTPTimeout: upstreamTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	mysticStyler, err := styler.New(&styler.Config{
		Style:       styler.StyleMystic,
		BaseURL:     mysticURL,
		HTTPTimeout: upstreamTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mystic styler: %w", err)
	}

	bardStyler, err := styler.New(&styler.Config{
		Style:       styler.StyleBard,
		BaseURL:     bardURL,
		HTTPTimeout: upstreamTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bard styler: %w", err)
	}

	service, err := creatureorch.NewOrchestrator(&creatureorch.Config{
		CatalogClient: catalogClient,
		MysticStyler:  mysticStyler,
		BardStyler:    bardStyler,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create creature orchestrator: %w", err)
	}

	handler, err := creaturehandler.NewHandler(&creaturehandler.HandlerConfig{
		CreatureService: service,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create creature handler: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(idgen.NewUUID("req")),
		middleware.RequestLogger(),
		gin.Recovery(),
	)
	_ = router.SetTrustedProxies(nil)

	health.NewHandler(nil).RegisterRoutes(router)
	handler.RegisterRoutes(router.Group("/creature"))

	return router, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}
