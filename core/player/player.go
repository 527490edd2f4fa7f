// Package player orchestrates continuous playback: it asks the
// station scorer for the next track, keeps the recent-play history
// that shapes variety, and resolves entries to playable file paths.
// Actual audio output is behind the Sink interface; decoding belongs
// to the host platform, not to this package.
package player

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"localfm/core/library"
	"localfm/core/station"
	"localfm/logger"
	"localfm/model"
)

// Sink consumes resolved tracks. The CLI ships a logging sink; a UI
// would wrap the platform media element.
type Sink interface {
	Play(track *model.LibraryEntry, path string) error
}

// Player drives next-track selection for one listening session.
type Player struct {
	cache    *library.Cache
	stations *station.Service
	sink     Sink
	root     string

	current *model.RadioStation
	history []string
	// historySize is how many recently played ids selection refuses
	// to repeat.
	historySize int
}

// New creates a Player. root is the music directory used for the
// moved-file fallback search.
func New(cache *library.Cache, stations *station.Service, sink Sink, root string, historySize int) *Player {
	if historySize <= 0 {
		historySize = 10
	}
	return &Player{
		cache:       cache,
		stations:    stations,
		sink:        sink,
		root:        root,
		historySize: historySize,
	}
}

// PlayStation starts a session on the given station and plays its
// best-matching track.
func (p *Player) PlayStation(ctx context.Context, st *model.RadioStation) (*model.TrackScore, error) {
	p.current = st
	p.history = nil
	if err := p.stations.MarkPlayed(ctx, st.ID); err != nil {
		logger.Warn("failed to mark station played",
			logger.String("station", st.Name), logger.ErrorField(err))
	}
	return p.Next(ctx)
}

// PlayTrack plays one specific track and spins up a temporary station
// derived from it, so Next keeps the session going in its style.
func (p *Player) PlayTrack(ctx context.Context, track *model.LibraryEntry) error {
	st, err := p.stations.CreateTemporary(ctx, track)
	if err != nil {
		return fmt.Errorf("failed to create temporary station: %w", err)
	}
	p.current = st
	p.history = nil
	if err := p.play(track); err != nil {
		return err
	}
	p.remember(track.ID)
	return nil
}

// Next selects and plays the next track for the current session.
// Returns nil without error when the library is empty.
func (p *Player) Next(ctx context.Context) (*model.TrackScore, error) {
	if p.current == nil {
		return nil, fmt.Errorf("no station selected")
	}
	tracks, err := p.cache.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}
	pick := station.SelectNext(tracks, p.current.Criteria, p.history)
	if pick == nil {
		return nil, nil
	}
	if err := p.play(pick.Track); err != nil {
		return nil, err
	}
	p.remember(pick.Track.ID)
	return pick, nil
}

func (p *Player) play(track *model.LibraryEntry) error {
	path, err := p.Resolve(track)
	if err != nil {
		return err
	}
	if p.sink == nil {
		return nil
	}
	return p.sink.Play(track, path)
}

// remember pushes an id onto the history window, evicting the oldest
// beyond historySize.
func (p *Player) remember(id string) {
	p.history = append(p.history, id)
	if len(p.history) > p.historySize {
		p.history = p.history[len(p.history)-p.historySize:]
	}
}

// History returns the recently played entry ids, oldest first.
func (p *Player) History() []string {
	return append([]string(nil), p.history...)
}

// Resolve turns an entry into a playable file path. If the recorded
// path no longer exists the file may have moved within the root, so
// a recursive search by file name is tried before giving up.
func (p *Player) Resolve(track *model.LibraryEntry) (string, error) {
	if _, err := os.Stat(track.FilePath); err == nil {
		return track.FilePath, nil
	}

	logger.Debug("file missing at recorded path, searching",
		logger.String("path", track.FilePath))

	var found string
	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && strings.EqualFold(d.Name(), track.FileName) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search for %s: %w", track.FileName, err)
	}
	if found == "" {
		return "", fmt.Errorf("file %s not found under %s", track.FileName, p.root)
	}
	return found, nil
}
