// Package repo implements the data persistence layer for café records,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and MySQL, plus schema migrations.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
)

// Supported values for the driver argument of OpenDatabase.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// OpenDatabase opens the store selected by driver. For sqlite, target is a
// file path; for mysql it is a DSN. When traced is true every query emits an
// OpenTelemetry span through the GORM plugin.
func OpenDatabase(driver, target string, traced bool) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "":
		db, err = OpenSQLite(target)
	case DriverMySQL:
		db, err = OpenMySQL(target)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}
	if traced {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("attach tracing plugin: %w", err)
		}
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	tunePool(db, 10)
	return db, nil
}

// OpenMySQL connects to a MySQL server using dsn
// (e.g. "user:pass@tcp(127.0.0.1:3306)/cafes?parseTime=true").
func OpenMySQL(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("mysql: empty DSN")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	tunePool(db, 25)
	return db, nil
}

func tunePool(db *gorm.DB, maxConns int) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(maxConns)
		sqlDB.SetMaxIdleConns(maxConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
}

// AutoMigrate creates or updates the cafe table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Cafe{})
}
