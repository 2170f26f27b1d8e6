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
	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"aura.app/relay/common/id"
	"aura.app/relay/common/llm"
	"aura.app/relay/common/logger"
	"aura.app/relay/common/otel"
	"aura.app/relay/core/config"
	"aura.app/relay/internal/http/middleware"
	httprouter "aura.app/relay/internal/http/router"
	"aura.app/relay/internal/insight"
	"aura.app/relay/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	fmt.Printf("%s\n", banner)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(context.Background(), cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logOutput := logger.Setup(cfg)

	err = run(cfg)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if telemetry != nil {
		if shutdownErr := telemetry.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", shutdownErr)
		}
	}

	if err != nil {
		slog.Error("relay stopped", "error", err)
		_ = logOutput.Close()
		os.Exit(1)
	}
	slog.Info("shutdown complete")
	_ = logOutput.Close()
}

// run wires the relay and serves until SIGINT/SIGTERM or a listener failure.
func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.InfoContext(ctx, "relay starting",
		"env", cfg.Env,
		"backend", cfg.Insights.Backend,
		"provider", cfg.LLM.Provider,
		"otel", cfg.OTel.Enabled())

	if err := id.Init(1); err != nil {
		return fmt.Errorf("init snowflake id generator: %w", err)
	}

	source, err := insight.NewSource(ctx, cfg.Insights)
	if err != nil {
		return fmt.Errorf("init %s insight source: %w", cfg.Insights.Backend, err)
	}
	defer source.Close()

	generator, err := newGenerator(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "upstreams ready",
		"backend", source.Name(),
		"provider", generator.Provider(),
		"model", generator.Model())

	services := service.NewServices(service.ServicesConfig{
		Insights:  insight.NewFetcher(source, cfg.Insights.Limit),
		Generator: generator,
		Generation: service.GenerationSettings{
			Temperature: llm.Float(cfg.LLM.Temperature),
			TopP:        llm.Float(cfg.LLM.TopP),
		},
	})

	return serve(ctx, newHTTPServer(cfg, services))
}

func newGenerator(ctx context.Context, cfg config.LLMConfig) (llm.Generator, error) {
	generator, err := llm.NewGenerator(ctx, llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init %s llm client: %w", cfg.Provider, err)
	}
	return generator, nil
}

func newHTTPServer(cfg config.Config, services *service.Services) *http.Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var handler http.Handler = setupRouter(cfg, services)
	if cfg.Gzip {
		handler = gzhttp.GzipHandler(handler)
	}

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// serve blocks until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server starting", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → RequestID tags the context → Logger logs with both
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	httprouter.SetupRoutes(router, services)

	return router
}

const banner = `
 █████╗ ██╗   ██╗██████╗  █████╗     ██████╗ ███████╗██╗      █████╗ ██╗   ██╗
██╔══██╗██║   ██║██╔══██╗██╔══██╗    ██╔══██╗██╔════╝██║     ██╔══██╗╚██╗ ██╔╝
███████║██║   ██║██████╔╝███████║    ██████╔╝█████╗  ██║     ███████║ ╚████╔╝
██╔══██║██║   ██║██╔══██╗██╔══██║    ██╔══██╗██╔══╝  ██║     ██╔══██║  ╚██╔╝
██║  ██║╚██████╔╝██║  ██║██║  ██║    ██║  ██║███████╗███████╗██║  ██║   ██║
╚═╝  ╚═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝    ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝   ╚═╝
`
