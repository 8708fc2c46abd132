package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/database/audit"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
)

type Database struct {
	DB *gorm.DB
}

// Options tunes how the database is opened.
type Options struct {
	// LogLevel is one of silent, error, warn or info. Default: warn.
	LogLevel string
}

// NewDatabase opens the SQLite database at dbPath and migrates the schema.
func NewDatabase(dbPath string, opts Options) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), GormConfig(opts.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("database initialized")

	return &Database{DB: db}, nil
}

// GormConfig returns the gorm settings shared by every connection.
// Foreign keys are not created: author/book rules live in the services.
func GormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger:                                   logger.Default.LogMode(parseLogLevel(logLevel)),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}
}

// Migrate creates or upgrades every table.
func Migrate(db *gorm.DB) error {
	if err := authors.Migrate(db); err != nil {
		return err
	}
	if err := books.Migrate(db); err != nil {
		return err
	}
	return audit.Migrate(db)
}

// Ping checks that the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CatalogStats counts the live rows of the catalog tables.
type CatalogStats struct {
	Authors int64 `json:"authors"`
	Books   int64 `json:"books"`
}

// Stats counts authors and books. Removed authors are not counted.
func (d *Database) Stats(ctx context.Context) (CatalogStats, error) {
	var stats CatalogStats
	db := d.DB.WithContext(ctx)
	if err := db.Model(&authors.Record{}).Count(&stats.Authors).Error; err != nil {
		return CatalogStats{}, fmt.Errorf("count authors: %w", err)
	}
	if err := db.Model(&books.Record{}).Count(&stats.Books).Error; err != nil {
		return CatalogStats{}, fmt.Errorf("count books: %w", err)
	}
	return stats, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
