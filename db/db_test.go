package db

import (
	"path/filepath"
	"testing"

	"localfm/model"
)

func TestMigrateFreshStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	gdb, err := Connect(path)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer Close(gdb)

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	for _, m := range []interface{}{&model.LibraryEntry{}, &model.AlbumArt{}, &model.RadioStation{}} {
		if !gdb.Migrator().HasTable(m) {
			t.Errorf("missing table for %T", m)
		}
	}

	var meta schemaMeta
	if err := gdb.First(&meta).Error; err != nil {
		t.Fatalf("read schema meta: %v", err)
	}
	if meta.Version != SchemaVersion {
		t.Errorf("schema version = %d, want %d", meta.Version, SchemaVersion)
	}
}

func TestMigratePreservesRowsOnUpgrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")
	gdb, err := Connect(path)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer Close(gdb)

	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	entry := &model.LibraryEntry{ID: "1", FilePath: "/m/a.mp3", Title: "Kept"}
	if err := gdb.Create(entry).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Rewind the recorded version to mimic a store written by an
	// older build, then migrate again.
	if err := gdb.Model(&schemaMeta{}).Where("id = 1").Update("version", 1).Error; err != nil {
		t.Fatalf("rewind version: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("re-Migrate: %v", err)
	}

	var got model.LibraryEntry
	if err := gdb.First(&got, "id = ?", "1").Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Title != "Kept" {
		t.Errorf("row touched during upgrade: %+v", got)
	}
	var meta schemaMeta
	if err := gdb.First(&meta).Error; err != nil {
		t.Fatalf("read meta: %v", err)
	}
	if meta.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", meta.Version, SchemaVersion)
	}
}

func TestMigrateNilHandle(t *testing.T) {
	if err := Migrate(nil); err != ErrStoreNotInitialized {
		t.Errorf("err = %v, want ErrStoreNotInitialized", err)
	}
}
