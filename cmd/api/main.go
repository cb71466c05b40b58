package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"movieapi/docs"
	"movieapi/internal/config"
	"movieapi/internal/database"
	handlers "movieapi/internal/http/handler"
	"movieapi/internal/http/middleware"
	"movieapi/internal/logger"
	"movieapi/internal/metrics"
	"movieapi/internal/otel"
	"movieapi/internal/repository"
	"movieapi/internal/repository/cosmos"
	"movieapi/internal/repository/dynamo"
	"movieapi/internal/service"
	"movieapi/internal/summary"
)

// @title Movie API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	l, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, l)
	if err != nil {
		l.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Long-lived store handle, reused across requests
	store, err := newStore(ctx, cfg)
	if err != nil {
		l.Fatal("failed to initialize movie store", zap.String("store", cfg.Store), zap.Error(err))
	}

	generator := summary.NewOpenAIGenerator(&summary.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Logger:      l.Named("summary"),
	})
	movieSvc := service.NewMovieService(store, generator)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.RegisterSummaryMetrics(reg); err != nil {
		l.Fatal("failed to register summary metrics", zap.Error(err))
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		l.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(l))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, store, movieSvc, handlers.Options{
		RoutePrefix:    cfg.RoutePrefix,
		NotFoundStrict: cfg.NotFoundStrict,
		Gatherer:       reg,
	})

	configureSwagger(cfg.RoutePrefix)
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Warn("server shutdown", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			l.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	l.Info("listening", zap.String("addr", addr), zap.String("store", cfg.Store))
	if err := app.Listen(addr); err != nil {
		l.Fatal("failed to start server", zap.Error(err))
	}
}

func newStore(ctx context.Context, cfg *config.AppConfig) (repository.MovieRepository, error) {
	switch cfg.Store {
	case config.StoreCosmos:
		container, err := database.NewCosmos(cfg.Cosmos)
		if err != nil {
			return nil, err
		}
		return cosmos.NewMovieCosmos(container), nil
	case config.StoreDynamoDB:
		client, err := database.NewDynamo(ctx, cfg.Dynamo)
		if err != nil {
			return nil, err
		}
		return dynamo.NewMovieDynamo(client, cfg.Dynamo.Table), nil
	default:
		return nil, fmt.Errorf("unknown movie store %q", cfg.Store)
	}
}

// configureSwagger points the movie paths of the generated docs at the route
// prefix. Health routes stay at the root. Must run before the server starts.
func configureSwagger(prefix string) {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	docs.SwaggerInfo.SwaggerTemplate = strings.ReplaceAll(
		docs.SwaggerInfo.SwaggerTemplate, `"/getMovie`, `"`+prefix+`/getMovie`)
}
