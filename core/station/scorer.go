// Package station implements radio stations: persisted weighted
// criteria sets, the track scorer behind continuous playback, and the
// auto-discovery pass that materializes stations from library
// groupings.
package station

import (
	"sort"
	"strconv"
	"strings"

	"localfm/core/genre"
	"localfm/model"
)

// NormalizeWeights maps each attribute present in criteria to its
// summed weight divided by the grand total of all weights. A zero
// grand total yields zero effective weights across the board.
func NormalizeWeights(criteria []model.Criterion) map[model.CriterionAttribute]float64 {
	sums := make(map[model.CriterionAttribute]float64)
	var total float64
	for _, c := range criteria {
		sums[c.Attribute] += c.Weight
		total += c.Weight
	}
	if total == 0 {
		for attr := range sums {
			sums[attr] = 0
		}
		return sums
	}
	for attr := range sums {
		sums[attr] /= total
	}
	return sums
}

// Score computes a track's weighted match against a criteria set.
// Each criterion contributes its match value times its normalized
// attribute weight; criteria sharing an attribute contribute
// independently, so the sum is cumulative evidence and is not bounded
// to [0, 1].
func Score(track *model.LibraryEntry, criteria []model.Criterion) float64 {
	weights := NormalizeWeights(criteria)
	var score float64
	for _, c := range criteria {
		score += matchValue(track, c) * weights[c.Attribute]
	}
	return score
}

func matchValue(track *model.LibraryEntry, c model.Criterion) float64 {
	switch c.Attribute {
	case model.AttrArtist:
		return stringMatch(c.Value, track.Artist)
	case model.AttrAlbum:
		return stringMatch(c.Value, track.Album)
	case model.AttrMood:
		return stringMatch(c.Value, track.Mood)
	case model.AttrGenre:
		return genreMatch(c.Value, track.Genre)
	case model.AttrDecade:
		return decadeMatch(c.Value, track.Year)
	}
	return 0
}

// stringMatch scores how well a criterion value matches a track
// value: exact (case-insensitive) is 1; a criterion contained in the
// track value caps at 0.8, scaled by length ratio; a track value
// contained in the criterion caps at 0.5. Anything else, or either
// side empty, is 0.
func stringMatch(criterion, track string) float64 {
	criterion = strings.ToLower(strings.TrimSpace(criterion))
	track = strings.ToLower(strings.TrimSpace(track))
	if criterion == "" || track == "" {
		return 0
	}
	if criterion == track {
		return 1
	}
	if strings.Contains(track, criterion) {
		return min(0.8, float64(len(criterion))/float64(len(track)))
	}
	if strings.Contains(criterion, track) {
		return min(0.5, float64(len(track))/float64(len(criterion)))
	}
	return 0
}

// genreMatch splits the track's comma-joined genre field and takes
// the best-matching token: the higher of its direct string match and
// its curated similarity to the criterion value.
func genreMatch(criterion, trackGenres string) float64 {
	var best float64
	for _, token := range strings.Split(trackGenres, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if s := stringMatch(criterion, token); s > best {
			best = s
		}
		if s := genre.Similarity(criterion, token); s > best {
			best = s
		}
	}
	return best
}

// decadeMatch scores 1 only when the track's decade equals the
// criterion value exactly.
func decadeMatch(criterion string, year int) float64 {
	want, err := strconv.Atoi(strings.TrimSpace(criterion))
	if err != nil {
		return 0
	}
	if year/10*10 == want {
		return 1
	}
	return 0
}

// RankTracks scores every track against criteria and returns them in
// descending score order. Ties keep the input order (stable sort), so
// ranking is deterministic for a deterministic input.
func RankTracks(tracks []*model.LibraryEntry, criteria []model.Criterion) []model.TrackScore {
	scored := make([]model.TrackScore, 0, len(tracks))
	for _, t := range tracks {
		scored = append(scored, model.TrackScore{Track: t, Score: Score(t, criteria)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// SelectNext picks the best-scoring track whose id is not in the
// recent-history window. History shapes variety, it is not a hard
// filter: if every track is in history, the top-ranked track plays
// anyway rather than stalling playback. Returns nil for an empty
// library.
func SelectNext(tracks []*model.LibraryEntry, criteria []model.Criterion, history []string) *model.TrackScore {
	ranked := RankTracks(tracks, criteria)
	if len(ranked) == 0 {
		return nil
	}
	recent := make(map[string]bool, len(history))
	for _, id := range history {
		recent[id] = true
	}
	for i := range ranked {
		if !recent[ranked[i].Track.ID] {
			return &ranked[i]
		}
	}
	return &ranked[0]
}
