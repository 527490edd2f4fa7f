// Package genre scores relatedness between free-text genre labels.
//
// Rather than a generic edit-distance metric, relatedness comes from a
// curated table of music-domain relationships: "hip hop" and "rap" are
// textually far apart but musically the same family.
package genre

import "strings"

// aliases maps known variant spellings to a canonical form, applied
// after normalization.
var aliases = map[string]string{
	"alt rock":            "alternative rock",
	"alt. rock":           "alternative rock",
	"alternative":         "alternative rock",
	"rhythm & blues":      "r&b",
	"rhythm and blues":    "r&b",
	"r&b music":           "r&b",
	"rnb":                 "r&b",
	"hiphop":              "hip hop",
	"rap music":           "rap",
	"electronica":         "electronic",
	"edm":                 "electronic",
	"dance music":         "dance",
	"classic rock n roll": "rock and roll",
	"rock n roll":         "rock and roll",
	"rock & roll":         "rock and roll",
	"drum n bass":         "drum and bass",
	"drum & bass":         "drum and bass",
	"dnb":                 "drum and bass",
	"lofi":                "lo fi",
	"country & western":   "country",
	"soundtrack":          "score",
}

// Normalize lowercases, trims, collapses whitespace runs, replaces
// hyphens with spaces and applies the alias table.
func Normalize(g string) string {
	g = strings.ToLower(strings.TrimSpace(g))
	g = strings.ReplaceAll(g, "-", " ")
	g = strings.Join(strings.Fields(g), " ")
	if canonical, ok := aliases[g]; ok {
		return canonical
	}
	return g
}

// Similarity scores relatedness of two genre labels in [0, 1].
// Identical after normalization scores 1; otherwise the curated
// relation table decides; unrelated pairs score 0. Symmetric in its
// arguments.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if s, ok := relations[pairKey(na, nb)]; ok {
		return s
	}
	return 0
}

// pairKey builds an order-independent lookup key so a stored (A, B)
// row matches a (B, A) query identically.
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
