// Package search finds tracks, artists, albums and stations matching
// a query. Results are a tagged variant per kind, and overlapping
// invocations are resolved by cancellation: starting a new search
// cancels the previous one, and a cancelled invocation never
// publishes.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"localfm/model"
)

// Kind tags a search result variant.
type Kind string

const (
	KindTrack   Kind = "track"
	KindArtist  Kind = "artist"
	KindAlbum   Kind = "album"
	KindStation Kind = "station"
)

// Result is the sum type over search result variants. Consumers
// switch on the concrete type; Kind is for display.
type Result interface {
	Kind() Kind
}

// TrackResult is a single matching track.
type TrackResult struct {
	Track *model.LibraryEntry
}

func (TrackResult) Kind() Kind { return KindTrack }

// ArtistResult is a matching artist with their tracks.
type ArtistResult struct {
	Artist string
	Tracks []*model.LibraryEntry
}

func (ArtistResult) Kind() Kind { return KindArtist }

// AlbumResult is a matching album with its tracks.
type AlbumResult struct {
	Artist string
	Album  string
	Tracks []*model.LibraryEntry
}

func (AlbumResult) Kind() Kind { return KindAlbum }

// StationResult is a matching radio station.
type StationResult struct {
	Station *model.RadioStation
}

func (StationResult) Kind() Kind { return KindStation }

// Library is the read-only slice of the library cache the searcher
// consumes.
type Library interface {
	GetAllEntries(ctx context.Context) ([]*model.LibraryEntry, error)
	GetArtistsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error)
	GetAlbumsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error)
}

// Stations is the read-only slice of station storage the searcher
// consumes.
type Stations interface {
	GetAll(ctx context.Context) ([]*model.RadioStation, error)
}

// Searcher runs queries against the library and station stores. Each
// Search call cancels the previous in-flight one, so only the newest
// invocation can publish.
type Searcher struct {
	library  Library
	stations Stations

	mu         sync.Mutex
	cancelPrev context.CancelFunc
}

// NewSearcher creates a Searcher.
func NewSearcher(library Library, stations Stations) *Searcher {
	return &Searcher{library: library, stations: stations}
}

// Search collects all results matching query and hands them to
// publish. If a newer Search starts first, this invocation's context
// is cancelled and publish is never called; the error is then
// context.Canceled. Publish runs at most once per invocation.
func (s *Searcher) Search(ctx context.Context, query string, publish func([]Result)) error {
	s.mu.Lock()
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel
	s.mu.Unlock()

	results, err := s.collect(ctx, query)
	if err != nil {
		return err
	}

	// The token check and the publish must be the last things that
	// happen: a stale invocation's results are discarded here, never
	// applied.
	if err := ctx.Err(); err != nil {
		return err
	}
	if publish != nil {
		publish(results)
	}
	return nil
}

func (s *Searcher) collect(ctx context.Context, query string) ([]Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var results []Result

	entries, err := s.library.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) {
			results = append(results, TrackResult{Track: e})
		}
	}

	artists, err := s.library.GetArtistsByName(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(artists) {
		tracks := artists[key]
		results = append(results, ArtistResult{
			Artist: tracks[0].Artist,
			Tracks: tracks,
		})
	}

	albums, err := s.library.GetAlbumsByName(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(albums) {
		tracks := albums[key]
		results = append(results, AlbumResult{
			Artist: tracks[0].Artist,
			Album:  tracks[0].Album,
			Tracks: tracks,
		})
	}

	stations, err := s.stations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range stations {
		if strings.Contains(strings.ToLower(st.Name), q) {
			results = append(results, StationResult{Station: st})
		}
	}

	return results, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
