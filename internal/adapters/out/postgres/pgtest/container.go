// Package pgtest starts a disposable PostgreSQL for integration suites.
package pgtest

import (
	"context"
	"strings"
	"time"

	adapter "parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database inside a running container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + strings.Join(adapter.Tables, ", ") + " CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// RecordingTracker stands in for the unit of work when a repository is used
// on its own, and keeps what was tracked.
type RecordingTracker struct {
	Tracked []any
}

func (t *RecordingTracker) TrackAggregate(_ kernel.UUID, aggregate any) {
	t.Tracked = append(t.Tracked, aggregate)
}
