package station

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"localfm/core/library"
	"localfm/logger"
	"localfm/model"
	"localfm/repository"
)

// Discovery is the post-sync pass that turns large library groupings
// into auto-generated stations.
type Discovery struct {
	entries  repository.LibraryRepository
	stations repository.StationRepository

	// MinLibrarySize: below this many total tracks the whole pass is a
	// no-op. MinGroupSize: a grouping must exceed this many members to
	// earn a station. Both default to 20.
	MinLibrarySize int
	MinGroupSize   int
}

// NewDiscovery creates a Discovery pass over the given repositories.
func NewDiscovery(entries repository.LibraryRepository, stations repository.StationRepository) *Discovery {
	return &Discovery{
		entries:        entries,
		stations:       stations,
		MinLibrarySize: 20,
		MinGroupSize:   20,
	}
}

// candidate is one grouping that qualified for a station.
type candidate struct {
	name        string
	criteria    []model.Criterion
	genre       string // grouping genre, "" for mood/decade stations
	memberCount int
}

// Discover groups the cached library by genre, mood, decade and
// genre-by-decade and materializes a station for every group that
// exceeds MinGroupSize. Re-running without library changes creates
// nothing: an existing station with the same generated name means
// skip. A failure on one candidate is logged and the pass continues.
func (d *Discovery) Discover(ctx context.Context) error {
	tracks, err := d.entries.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("discovery: failed to read library: %w", err)
	}
	if len(tracks) <= d.MinLibrarySize {
		logger.Debug("library below discovery threshold",
			logger.Int("size", len(tracks)))
		return nil
	}

	candidates := d.collectCandidates(tracks)

	var created []*model.RadioStation
	createdMembers := make(map[string]int)
	for _, c := range candidates {
		exists, err := d.stations.ExistsByName(ctx, c.name)
		if err != nil {
			logger.Error("discovery: name check failed",
				logger.String("name", c.name), logger.ErrorField(err))
			continue
		}
		if exists {
			continue
		}

		st := &model.RadioStation{
			ID:              "st" + library.HashID(c.name),
			Name:            c.name,
			Description:     fmt.Sprintf("Auto-generated from %d tracks in your library", c.memberCount),
			Criteria:        c.criteria,
			IsAutoGenerated: true,
		}
		if err := d.stations.Create(ctx, st); err != nil {
			logger.Error("discovery: failed to create station",
				logger.String("name", c.name), logger.ErrorField(err))
			continue
		}
		created = append(created, st)
		createdMembers[st.ID] = c.memberCount
		logger.Info("discovered station",
			logger.String("name", c.name), logger.Int("members", c.memberCount))
	}

	if len(created) > 0 {
		d.assignImages(ctx, created, candidates, createdMembers)
	}
	return nil
}

func (d *Discovery) collectCandidates(tracks []*model.LibraryEntry) []candidate {
	byGenre := make(map[string][]*model.LibraryEntry)
	byMood := make(map[string][]*model.LibraryEntry)
	byDecade := make(map[int][]*model.LibraryEntry)
	byGenreDecade := make(map[string][]*model.LibraryEntry)

	for _, t := range tracks {
		decade := t.Decade()
		byDecade[decade] = append(byDecade[decade], t)

		if mood := strings.ToLower(strings.TrimSpace(t.Mood)); mood != "" {
			byMood[mood] = append(byMood[mood], t)
		}

		for _, g := range strings.Split(t.Genre, ",") {
			g = strings.ToLower(strings.TrimSpace(g))
			if g == "" {
				continue
			}
			byGenre[g] = append(byGenre[g], t)
			key := g + "|" + strconv.Itoa(decade)
			byGenreDecade[key] = append(byGenreDecade[key], t)
		}
	}

	var out []candidate
	for _, g := range sortedKeys(byGenre) {
		if members := byGenre[g]; len(members) > d.MinGroupSize {
			out = append(out, candidate{
				name:        "Genre: " + g,
				criteria:    []model.Criterion{{Attribute: model.AttrGenre, Value: g, Weight: 1.0}},
				genre:       g,
				memberCount: len(members),
			})
		}
	}
	for _, m := range sortedKeys(byMood) {
		if members := byMood[m]; len(members) > d.MinGroupSize {
			out = append(out, candidate{
				name:        "Mood: " + m,
				criteria:    []model.Criterion{{Attribute: model.AttrMood, Value: m, Weight: 1.0}},
				memberCount: len(members),
			})
		}
	}
	for _, dec := range sortedIntKeys(byDecade) {
		if members := byDecade[dec]; len(members) > d.MinGroupSize {
			out = append(out, candidate{
				name:        fmt.Sprintf("Decade: %d's", dec),
				criteria:    []model.Criterion{{Attribute: model.AttrDecade, Value: strconv.Itoa(dec), Weight: 1.0}},
				memberCount: len(members),
			})
		}
	}
	for _, key := range sortedKeys(byGenreDecade) {
		members := byGenreDecade[key]
		if len(members) <= d.MinGroupSize {
			continue
		}
		g, decStr, _ := strings.Cut(key, "|")
		// Neither genre nor decade alone explains membership here, so
		// both criteria carry a reduced weight.
		out = append(out, candidate{
			name: fmt.Sprintf("%s (%s's)", g, decStr),
			criteria: []model.Criterion{
				{Attribute: model.AttrGenre, Value: g, Weight: 0.7},
				{Attribute: model.AttrDecade, Value: decStr, Weight: 0.7},
			},
			genre:       g,
			memberCount: len(members),
		})
	}
	return out
}

// assignImages hands out station artwork from the static genre table,
// smallest stations first, never reusing an image already held by
// another auto-generated station.
func (d *Discovery) assignImages(ctx context.Context, created []*model.RadioStation, candidates []candidate, members map[string]int) {
	genreOf := make(map[string]string, len(candidates))
	for _, c := range candidates {
		genreOf["st"+library.HashID(c.name)] = c.genre
	}

	used := make(map[string]bool)
	all, err := d.stations.GetAll(ctx)
	if err != nil {
		logger.Warn("discovery: could not list stations for image assignment",
			logger.ErrorField(err))
		return
	}
	for _, st := range all {
		if st.IsAutoGenerated && st.ImagePath != "" && !strings.EqualFold(st.Name, "All Music") {
			used[st.ImagePath] = true
		}
	}

	sort.SliceStable(created, func(i, j int) bool {
		return members[created[i].ID] < members[created[j].ID]
	})

	for _, st := range created {
		img, ok := genreImages[genreOf[st.ID]]
		if !ok || used[img] {
			continue
		}
		if _, err := d.stations.Update(ctx, st.ID, model.StationPatch{ImagePath: &img}); err != nil {
			logger.Warn("discovery: failed to assign station image",
				logger.String("name", st.Name), logger.ErrorField(err))
			continue
		}
		used[img] = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
