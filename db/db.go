// Package db owns the sqlite store lifecycle: opening the handle,
// versioned schema migration and shutdown. The handle is constructed
// once at startup and injected into every repository; nothing in this
// package keeps global state.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"localfm/logger"
	"localfm/model"
)

// SchemaVersion is the current store layout version. Opening a store
// written by an older version triggers an in-place upgrade that adds
// missing tables and columns without touching existing rows.
const SchemaVersion = 2

// ErrStoreNotInitialized is returned when an operation runs against a
// nil store handle. This is a sequencing bug in the caller, not a
// recoverable runtime condition.
var ErrStoreNotInitialized = errors.New("db: store not initialized")

// schemaMeta is a single-row table carrying the store layout version.
type schemaMeta struct {
	ID        uint `gorm:"primaryKey"`
	Version   int
	UpdatedAt time.Time
}

func (schemaMeta) TableName() string { return "schema_meta" }

// Connect opens (creating if necessary) the sqlite store at path and
// configures the underlying connection pool.
func Connect(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	// A single local process; one writer connection avoids sqlite
	// lock contention entirely.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("store opened", logger.String("path", path))
	return gdb, nil
}

// Migrate brings the store schema up to SchemaVersion. Missing tables
// and columns are created; existing rows are never modified.
func Migrate(gdb *gorm.DB) error {
	if gdb == nil {
		return ErrStoreNotInitialized
	}

	if err := gdb.AutoMigrate(&schemaMeta{}); err != nil {
		return fmt.Errorf("failed to migrate schema_meta: %w", err)
	}

	var meta schemaMeta
	err := gdb.First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		meta = schemaMeta{ID: 1, Version: 0}
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if meta.Version > SchemaVersion {
		return fmt.Errorf("store schema version %d is newer than supported version %d", meta.Version, SchemaVersion)
	}

	if err := gdb.AutoMigrate(
		&model.LibraryEntry{},
		&model.AlbumArt{},
		&model.RadioStation{},
	); err != nil {
		return fmt.Errorf("failed to migrate store tables: %w", err)
	}

	if meta.Version != SchemaVersion {
		logger.Info("store schema upgraded",
			logger.Int("from", meta.Version),
			logger.Int("to", SchemaVersion))
		meta.Version = SchemaVersion
		meta.UpdatedAt = time.Now()
		if err := gdb.Save(&meta).Error; err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}

	return nil
}

// Close closes the store handle.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
