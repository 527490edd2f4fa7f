package station

import (
	"testing"

	"localfm/model"
)

func criteriaByAttr(criteria []model.Criterion) map[model.CriterionAttribute][]model.Criterion {
	m := make(map[model.CriterionAttribute][]model.Criterion)
	for _, c := range criteria {
		m[c.Attribute] = append(m[c.Attribute], c)
	}
	return m
}

func TestDeriveCriteriaSingleSeed(t *testing.T) {
	track := &model.LibraryEntry{
		ID:     "1",
		Artist: "Miles Davis",
		Album:  "Kind of Blue",
		Genre:  "Jazz, Modal",
		Mood:   "Calm",
		Year:   1959,
	}

	got := DeriveCriteria([]*model.LibraryEntry{track}, nil)
	byAttr := criteriaByAttr(got)

	wantCounts := map[model.CriterionAttribute]int{
		model.AttrArtist: 1,
		model.AttrAlbum:  1,
		model.AttrGenre:  2, // one per split genre token
		model.AttrMood:   1,
		model.AttrDecade: 1,
	}
	for attr, n := range wantCounts {
		if len(byAttr[attr]) != n {
			t.Errorf("attribute %s: got %d criteria, want %d", attr, len(byAttr[attr]), n)
		}
	}
	for _, c := range got {
		if c.Weight != 1.0 {
			t.Errorf("criterion %s=%s weight = %v, want 1.0", c.Attribute, c.Value, c.Weight)
		}
	}
	if len(byAttr[model.AttrDecade]) == 1 && byAttr[model.AttrDecade][0].Value != "1950" {
		t.Errorf("decade = %s, want 1950", byAttr[model.AttrDecade][0].Value)
	}
}

func TestDeriveCriteriaBaseWeightOverride(t *testing.T) {
	track := &model.LibraryEntry{Artist: "A", Album: "B", Year: 1990}
	got := DeriveCriteria([]*model.LibraryEntry{track},
		map[model.CriterionAttribute]float64{model.AttrAlbum: 0.3})

	for _, c := range got {
		switch c.Attribute {
		case model.AttrAlbum:
			if c.Weight != 0.3 {
				t.Errorf("album weight = %v, want override 0.3", c.Weight)
			}
		default:
			if c.Weight != 1.0 {
				t.Errorf("%s weight = %v, want 1.0", c.Attribute, c.Weight)
			}
		}
	}
}

func TestDeriveCriteriaOccurrenceFractions(t *testing.T) {
	tracks := []*model.LibraryEntry{
		{Artist: "A", Genre: "rock", Year: 1991},
		{Artist: "A", Genre: "rock", Year: 1994},
		{Artist: "B", Genre: "pop", Year: 2003},
		{Artist: "A", Genre: "rock", Year: 1999},
	}
	got := DeriveCriteria(tracks, nil)
	byAttr := criteriaByAttr(got)

	wantWeights := map[string]float64{
		"A":    0.75,
		"B":    0.25,
		"rock": 0.75,
		"pop":  0.25,
		"1990": 0.75,
		"2000": 0.25,
	}
	seen := 0
	for _, cs := range byAttr {
		for _, c := range cs {
			want, ok := wantWeights[c.Value]
			if !ok {
				continue
			}
			seen++
			if !almostEqual(c.Weight, want) {
				t.Errorf("criterion %s=%s weight = %v, want %v", c.Attribute, c.Value, c.Weight, want)
			}
		}
	}
	if seen != len(wantWeights) {
		t.Errorf("matched %d expected criteria, want %d", seen, len(wantWeights))
	}
}

func TestDeriveCriteriaSkipsEmptyValues(t *testing.T) {
	track := &model.LibraryEntry{Artist: "A", Mood: "", Genre: "", Year: 1990}
	got := DeriveCriteria([]*model.LibraryEntry{track}, nil)
	for _, c := range got {
		if c.Value == "" {
			t.Errorf("empty value derived for attribute %s", c.Attribute)
		}
		if c.Attribute == model.AttrMood || c.Attribute == model.AttrGenre {
			t.Errorf("unexpected %s criterion from empty field", c.Attribute)
		}
	}
}

func TestDeriveCriteriaEmptySeeds(t *testing.T) {
	if got := DeriveCriteria(nil, nil); got != nil {
		t.Errorf("want nil for no seeds, got %v", got)
	}
}
