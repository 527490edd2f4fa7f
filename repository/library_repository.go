package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"localfm/model"
)

// ErrNotFound is returned when an operation targets a row that does
// not exist in the store.
var ErrNotFound = errors.New("repository: not found")

// LibraryRepository defines the store operations for library entries.
type LibraryRepository interface {
	// Create inserts a new entry. An existing row with the same ID is
	// replaced (replace-on-write, entries are never patched in place).
	Create(ctx context.Context, entry *model.LibraryEntry) error

	// GetByID returns the entry with the given id, or nil if absent.
	GetByID(ctx context.Context, id string) (*model.LibraryEntry, error)

	// GetByFilePath returns the entry backing the given path, or nil if absent.
	GetByFilePath(ctx context.Context, filePath string) (*model.LibraryEntry, error)

	// GetAll returns every entry in stable (primary key) order.
	GetAll(ctx context.Context) ([]*model.LibraryEntry, error)

	// DeleteByID removes an entry. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error

	// Count returns the total number of entries.
	Count(ctx context.Context) (int64, error)
}

type gormLibraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository creates a LibraryRepository backed by the given store handle.
func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &gormLibraryRepository{db: db}
}

func (r *gormLibraryRepository) Create(ctx context.Context, entry *model.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("failed to create library entry %s: %w", entry.ID, err)
	}
	return nil
}

func (r *gormLibraryRepository) GetByID(ctx context.Context, id string) (*model.LibraryEntry, error) {
	var entry model.LibraryEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get library entry %s: %w", id, err)
	}
	return &entry, nil
}

func (r *gormLibraryRepository) GetByFilePath(ctx context.Context, filePath string) (*model.LibraryEntry, error) {
	var entry model.LibraryEntry
	err := r.db.WithContext(ctx).First(&entry, "file_path = ?", filePath).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get library entry by path %s: %w", filePath, err)
	}
	return &entry, nil
}

func (r *gormLibraryRepository) GetAll(ctx context.Context) ([]*model.LibraryEntry, error) {
	entries := make([]*model.LibraryEntry, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to query all library entries: %w", err)
	}
	return entries, nil
}

func (r *gormLibraryRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.LibraryEntry{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete library entry %s: %w", id, err)
	}
	return nil
}

func (r *gormLibraryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.LibraryEntry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count library entries: %w", err)
	}
	return count, nil
}
