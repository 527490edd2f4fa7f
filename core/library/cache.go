// Package library implements the durable local cache of track
// metadata and linked album art, kept in sync with a music directory
// by incremental diffing.
package library

import (
	"context"
	"fmt"
	"strings"

	"localfm/core/metadata"
	"localfm/core/scanner"
	"localfm/logger"
	"localfm/model"
	"localfm/repository"
)

// Progress reports sync progress over the set of newly discovered
// files only, not the whole library. A terminal (0, 0) event is
// emitted after the last per-file report.
type Progress struct {
	Current int
	Total   int
}

// ProgressFunc receives progress events during a sync pass. Passed
// per call rather than stored on the service, so concurrent callers
// and tests don't share observer state.
type ProgressFunc func(Progress)

// Discoverer runs the station auto-discovery pass. The cache only
// knows how to trigger it; the station side owns everything else.
type Discoverer interface {
	Discover(ctx context.Context) error
}

// Cache is the library cache service. Construct with NewCache; all
// collaborators are injected so tests can isolate the store.
type Cache struct {
	entries  repository.LibraryRepository
	art      repository.AlbumArtRepository
	scan     *scanner.Scanner
	extract  metadata.Extractor
	discover Discoverer // optional
}

// NewCache creates a library cache. discover may be nil to disable
// post-sync station discovery.
func NewCache(
	entries repository.LibraryRepository,
	art repository.AlbumArtRepository,
	scan *scanner.Scanner,
	extract metadata.Extractor,
	discover Discoverer,
) *Cache {
	return &Cache{
		entries:  entries,
		art:      art,
		scan:     scan,
		extract:  extract,
		discover: discover,
	}
}

// Sync reconciles the cache against the live state of root. Removals
// are applied before additions; each new file is fully persisted
// (entry, then best-effort art) before progress moves on. Two Sync
// calls must not run concurrently; serializing them is the caller's
// job.
func (c *Cache) Sync(ctx context.Context, root string, onProgress ProgressFunc) error {
	cached, err := c.entries.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("sync: failed to read cached entries: %w", err)
	}

	files, err := c.scan.Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("sync: scan failed: %w", err)
	}

	live := make(map[string]scanner.FileInfo, len(files))
	for _, f := range files {
		live[f.Path] = f
	}

	// Phase 1: drop entries whose backing file disappeared.
	removed := 0
	cachedPaths := make(map[string]bool, len(cached))
	for _, entry := range cached {
		cachedPaths[entry.FilePath] = true
		if _, ok := live[entry.FilePath]; ok {
			continue
		}
		if err := c.entries.DeleteByID(ctx, entry.ID); err != nil {
			logger.Error("failed to delete stale entry",
				logger.String("id", entry.ID),
				logger.String("path", entry.FilePath),
				logger.ErrorField(err))
			continue
		}
		removed++
	}

	// Phase 2: ingest files the cache has never seen, sequentially.
	var newFiles []scanner.FileInfo
	for _, f := range files {
		if !cachedPaths[f.Path] {
			newFiles = append(newFiles, f)
		}
	}

	added := 0
	for i, f := range newFiles {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if c.ingestFile(ctx, f) {
			added++
		}
		if onProgress != nil {
			onProgress(Progress{Current: i + 1, Total: len(newFiles)})
		}
	}
	if onProgress != nil {
		onProgress(Progress{}) // terminal reset
	}

	logger.Info("sync complete",
		logger.Int("scanned", len(files)),
		logger.Int("added", added),
		logger.Int("removed", removed))

	if added == 0 && removed == 0 {
		return nil
	}

	if removed > 0 {
		if n, err := c.art.DeleteOrphans(ctx); err != nil {
			logger.Warn("orphan art sweep failed", logger.ErrorField(err))
		} else if n > 0 {
			logger.Debug("swept orphan album art", logger.Int64("count", n))
		}
	}

	if c.discover != nil {
		if err := c.discover.Discover(ctx); err != nil {
			logger.Error("station discovery failed", logger.ErrorField(err))
		}
	}
	return nil
}

// ingestFile extracts and persists one new file. Returns false if the
// file was skipped; skipped files stay out of the cache and are
// naturally retried on the next sync pass.
func (c *Cache) ingestFile(ctx context.Context, f scanner.FileInfo) bool {
	tags := c.extract.Extract(f.Path)
	if tags == nil {
		logger.Warn("skipping file with unreadable metadata",
			logger.String("path", f.Path))
		return false
	}

	entry := entryFromTags(f, tags)
	if err := c.entries.Create(ctx, entry); err != nil {
		logger.Error("failed to persist entry",
			logger.String("path", f.Path), logger.ErrorField(err))
		return false
	}

	// Art is best-effort and independently failable.
	if art := c.extract.ExtractArt(f.Path); art != nil {
		rec := &model.AlbumArt{
			ID:       entry.ID,
			Data:     art.Data,
			MimeType: art.MimeType,
			FilePath: f.Path,
		}
		if err := c.art.Create(ctx, rec); err != nil {
			logger.Warn("failed to persist album art",
				logger.String("path", f.Path), logger.ErrorField(err))
		}
	}
	return true
}

func entryFromTags(f scanner.FileInfo, tags *metadata.Tags) *model.LibraryEntry {
	entry := &model.LibraryEntry{
		ID:           HashID(f.Path),
		FilePath:     f.Path,
		FileName:     f.Name,
		ModifiedTime: f.ModTime,
		Title:        tags.Title,
		Artist:       tags.Artist,
		Album:        tags.Album,
		Genre:        strings.Join(tags.Genres, ", "),
		Year:         tags.Year,
		Mood:         tags.Mood,
		Duration:     tags.Duration,
	}
	if entry.Title == "" {
		entry.Title = model.UnknownTitle
	}
	if entry.Artist == "" {
		entry.Artist = model.UnknownArtist
	}
	if entry.Album == "" {
		entry.Album = model.UnknownAlbum
	}
	return entry
}

// GetAllEntries returns every cached entry.
func (c *Cache) GetAllEntries(ctx context.Context) ([]*model.LibraryEntry, error) {
	return c.entries.GetAll(ctx)
}

// GetArtistsByName returns entries whose artist contains query
// (case-insensitive), grouped by lowercased artist.
func (c *Cache) GetArtistsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error) {
	entries, err := c.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	groups := make(map[string][]*model.LibraryEntry)
	for _, e := range entries {
		artist := strings.ToLower(e.Artist)
		if strings.Contains(artist, q) {
			groups[artist] = append(groups[artist], e)
		}
	}
	return groups, nil
}

// GetAlbumsByName returns entries whose album contains query
// (case-insensitive), grouped by the composite "artist|album" key.
func (c *Cache) GetAlbumsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error) {
	entries, err := c.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	groups := make(map[string][]*model.LibraryEntry)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Album), q) {
			key := strings.ToLower(e.Artist) + "|" + strings.ToLower(e.Album)
			groups[key] = append(groups[key], e)
		}
	}
	return groups, nil
}

// GetAlbumArt returns the artwork linked to an entry, or nil if the
// entry carries none.
func (c *Cache) GetAlbumArt(ctx context.Context, entryID string) (*model.AlbumArt, error) {
	return c.art.GetByID(ctx, entryID)
}
