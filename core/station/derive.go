package station

import (
	"sort"
	"strconv"
	"strings"

	"localfm/model"
)

// deriveOrder fixes the attribute iteration order so derived criteria
// come out deterministic.
var deriveOrder = []model.CriterionAttribute{
	model.AttrArtist,
	model.AttrAlbum,
	model.AttrGenre,
	model.AttrMood,
	model.AttrDecade,
}

// DeriveCriteria builds a criteria set from a group of seed tracks
// ("make a station like these"). Every distinct (attribute, value)
// pair observed across the seeds becomes one criterion weighted by
// the fraction of seed tracks exhibiting it, so attributes shared by
// all seeds dominate and incidental ones fade. A baseWeights entry
// replaces the computed weight for every criterion of that attribute.
func DeriveCriteria(tracks []*model.LibraryEntry, baseWeights map[model.CriterionAttribute]float64) []model.Criterion {
	if len(tracks) == 0 {
		return nil
	}

	counts := make(map[model.CriterionAttribute]map[string]int)
	tally := func(attr model.CriterionAttribute, value string) {
		if value == "" {
			return
		}
		if counts[attr] == nil {
			counts[attr] = make(map[string]int)
		}
		counts[attr][value]++
	}

	for _, t := range tracks {
		tally(model.AttrArtist, strings.TrimSpace(t.Artist))
		tally(model.AttrAlbum, strings.TrimSpace(t.Album))
		for _, g := range strings.Split(t.Genre, ",") {
			tally(model.AttrGenre, strings.ToLower(strings.TrimSpace(g)))
		}
		tally(model.AttrMood, strings.ToLower(strings.TrimSpace(t.Mood)))
		tally(model.AttrDecade, strconv.Itoa(t.Decade()))
	}

	seedCount := float64(len(tracks))
	var criteria []model.Criterion
	for _, attr := range deriveOrder {
		values := make([]string, 0, len(counts[attr]))
		for v := range counts[attr] {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			weight := float64(counts[attr][v]) / seedCount
			if override, ok := baseWeights[attr]; ok {
				weight = override
			}
			criteria = append(criteria, model.Criterion{
				Attribute: attr,
				Value:     v,
				Weight:    weight,
			})
		}
	}
	return criteria
}
