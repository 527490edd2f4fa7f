package genre

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Rock", "rock"},
		{"trims", "  jazz  ", "jazz"},
		{"collapses whitespace", "hip   hop", "hip hop"},
		{"hyphen to space", "hip-hop", "hip hop"},
		{"alias alt rock", "Alt. Rock", "alternative rock"},
		{"alias rhythm and blues", "Rhythm And Blues", "r&b"},
		{"alias rnb", "RnB", "r&b"},
		{"alias edm", "EDM", "electronic"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimilarityIdentity(t *testing.T) {
	for _, s := range []string{"rock", "Hip-Hop", "  Jazz ", "alt. rock", "r&b music", "something made up"} {
		if got := Similarity(s, s); got != 1 {
			t.Errorf("Similarity(%q, %q) = %v, want 1", s, s, got)
		}
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"rock", "metal"},
		{"hip hop", "rap"},
		{"jazz", "blues"},
		{"pop", "country"}, // unrelated, both directions 0
		{"house", "techno"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %v but Similarity(%q, %q) = %v",
				p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestSimilarityNormalizationInvariance(t *testing.T) {
	a := Similarity("Hip-Hop", "rap")
	b := Similarity("hip hop", "Rap")
	if a != b {
		t.Errorf("Similarity(Hip-Hop, rap) = %v but Similarity(hip hop, Rap) = %v", a, b)
	}
	if a == 0 {
		t.Error("hip hop and rap should be related")
	}
}

func TestSimilarityValues(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"hip hop", "rap", 0.9},
		{"rock", "hard rock", 0.9},
		{"jazz", "blues", 0.7},
		{"pop", "dance", 0.8},
		{"classical", "techno", 0},
		{"polka", "grindcore", 0},
		{"", "rock", 0},
		{"rock", "", 0},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRelationScoresInRange(t *testing.T) {
	for _, r := range curatedRelations {
		if r.score < 0.4 || r.score > 0.9 {
			t.Errorf("relation (%q, %q) score %v outside [0.4, 0.9]", r.a, r.b, r.score)
		}
		if r.a == r.b {
			t.Errorf("self relation (%q, %q) is redundant", r.a, r.b)
		}
	}
}
