// Package sqlite persists the client session in a local SQLite file.
package sqlite

import (
	"context"
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const driver = "sqlite3"

//go:embed migrations/*.sql
var migrations embed.FS

// Open connects to the SQLite file at path, creating it if needed.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	// one writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping session db: %w", err)
	}
	return db, nil
}

// NewGorm wraps an open connection for the repository layer.
func NewGorm(db *sqlx.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(&sqlite.Dialector{DriverName: driver, Conn: db.DB}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}
	return gdb, nil
}

func prepareGoose() error {
	goose.SetBaseFS(migrations)
	goose.SetTableName("schema_migrations")
	return goose.SetDialect(driver)
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Rollback reverts the latest migration.
func Rollback(ctx context.Context, db *sqlx.DB) error {
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	if err := goose.DownContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	return nil
}

// Version reports the applied schema version.
func Version(ctx context.Context, db *sqlx.DB) (int64, error) {
	if err := prepareGoose(); err != nil {
		return 0, fmt.Errorf("goose: %w", err)
	}
	return goose.GetDBVersionContext(ctx, db.DB)
}
