package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"localfm/model"
)

// slowLibrary serves a fixed track list and can hold its first
// invocation hostage until released, to model a slow store read.
type slowLibrary struct {
	entries []*model.LibraryEntry

	mu      sync.Mutex
	calls   int
	holdone chan struct{} // first GetAllEntries blocks on this when set
}

func (l *slowLibrary) GetAllEntries(ctx context.Context) ([]*model.LibraryEntry, error) {
	l.mu.Lock()
	l.calls++
	first := l.calls == 1
	hold := l.holdone
	l.mu.Unlock()
	if first && hold != nil {
		<-hold
	}
	return l.entries, nil
}

func (l *slowLibrary) GetArtistsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error) {
	return map[string][]*model.LibraryEntry{}, nil
}

func (l *slowLibrary) GetAlbumsByName(ctx context.Context, query string) (map[string][]*model.LibraryEntry, error) {
	return map[string][]*model.LibraryEntry{}, nil
}

type fixedStations struct {
	stations []*model.RadioStation
}

func (s *fixedStations) GetAll(ctx context.Context) ([]*model.RadioStation, error) {
	return s.stations, nil
}

func TestSearchFindsAllKinds(t *testing.T) {
	lib := &slowLibrary{entries: []*model.LibraryEntry{
		{ID: "1", Title: "Blue in Green", Artist: "Miles Davis", Album: "Kind of Blue"},
		{ID: "2", Title: "So What", Artist: "Miles Davis", Album: "Kind of Blue"},
	}}
	stations := &fixedStations{stations: []*model.RadioStation{
		{ID: "st1", Name: "Blue Hour"},
	}}
	s := NewSearcher(lib, stations)

	var got []Result
	err := s.Search(context.Background(), "blue", func(r []Result) { got = r })
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	kinds := map[Kind]int{}
	for _, r := range got {
		kinds[r.Kind()]++
	}
	if kinds[KindTrack] != 1 {
		t.Errorf("track results = %d, want 1 (Blue in Green)", kinds[KindTrack])
	}
	if kinds[KindStation] != 1 {
		t.Errorf("station results = %d, want 1 (Blue Hour)", kinds[KindStation])
	}
}

func TestSearchNewerInvocationWins(t *testing.T) {
	alpha := &model.LibraryEntry{ID: "1", Title: "alpha song"}
	beta := &model.LibraryEntry{ID: "2", Title: "beta song"}
	release := make(chan struct{})
	lib := &slowLibrary{
		entries: []*model.LibraryEntry{alpha, beta},
		holdone: release,
	}
	s := NewSearcher(lib, &fixedStations{})

	var (
		mu        sync.Mutex
		published []Result
	)
	publish := func(r []Result) {
		mu.Lock()
		published = r
		mu.Unlock()
	}

	alphaDone := make(chan error, 1)
	go func() {
		alphaDone <- s.Search(context.Background(), "alpha", publish)
	}()

	// Wait until the alpha search is inside its blocked store read so
	// the beta search provably starts second.
	for {
		lib.mu.Lock()
		started := lib.calls >= 1
		lib.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if err := s.Search(context.Background(), "beta", publish); err != nil {
		t.Fatalf("beta Search: %v", err)
	}

	// Let the stale alpha search finish; it must not publish.
	close(release)
	if err := <-alphaDone; !errors.Is(err, context.Canceled) {
		t.Errorf("alpha err = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(published) != 1 {
		t.Fatalf("published %d results, want 1", len(published))
	}
	tr, ok := published[0].(TrackResult)
	if !ok || tr.Track.Title != "beta song" {
		t.Errorf("published = %+v, want beta song", published[0])
	}
}
