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

	"parceltrack/cmd"
	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/events"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/adapters/out/redis/parcelcache"
	"parceltrack/internal/core/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	appLogger := newLogger(config)
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(config)
	if err != nil {
		return err
	}
	if config.DBAutoMigrate {
		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	cache, closeCache, err := newParcelCache(ctx, config, appLogger)
	if err != nil {
		return err
	}
	defer closeCache()

	publisher := newPublisher(config, appLogger)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			appLogger.Error("failed to close publisher", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(config, db, cache, publisher, appLogger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	e := newEcho(config, appLogger)
	httpadapter.RegisterDocs(e, doc)
	app.CreateHTTPServer().Register(e.Group("/api/v1"))

	return serve(ctx, e, config.HTTPPort, appLogger)
}

func newLogger(config cmd.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// openDatabase connects through pgx by default; DB_DRIVER=postgres selects lib/pq.
func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dialector := gormpostgres.New(gormpostgres.Config{
		DriverName: config.DBDriver,
		DSN:        config.DSN(),
	})

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func newParcelCache(ctx context.Context, config cmd.Config, appLogger *slog.Logger) (cmd.ParcelViewCache, func(), error) {
	if config.RedisAddr == "" {
		appLogger.Info("parcel cache disabled")
		return parcelcache.Noop{}, func() {}, nil
	}

	rdb, err := parcelcache.Connect(ctx, config.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if closeErr := rdb.Close(); closeErr != nil {
			appLogger.Error("failed to close redis client", "error", closeErr)
		}
	}
	return parcelcache.NewRedisCache(rdb, config.ParcelCacheTTL, appLogger), closeFn, nil
}

func newPublisher(config cmd.Config, appLogger *slog.Logger) ports.EventPublisher {
	if config.KafkaBrokers == "" {
		appLogger.Info("no kafka brokers configured, parcel events are only logged")
		return events.NewLogPublisher(appLogger)
	}
	return events.NewKafkaPublisher(config.KafkaBrokers, config.KafkaParcelEventsTopic, appLogger)
}

func newEcho(config cmd.Config, appLogger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(config.LogLevel))
	e.Validator = httpadapter.NewRequestValidator()
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(appLogger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				appLogger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			appLogger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", httpadapter.Health)
	return e
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func serve(ctx context.Context, e *echo.Echo, port string, appLogger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	appLogger.Info("shutting down")
	return e.Shutdown(shutdownCtx)
}
