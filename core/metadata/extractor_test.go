package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "Rock", []string{"Rock"}},
		{"comma separated", "Rock, Pop", []string{"Rock", "Pop"}},
		{"semicolons", "Rock; Pop", []string{"Rock", "Pop"}},
		{"extra whitespace", "  Rock ,  Pop ", []string{"Rock", "Pop"}},
		{"empty tokens dropped", "Rock,,Pop,", []string{"Rock", "Pop"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitGenres(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitGenres(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractFailureReturnsNil(t *testing.T) {
	e := NewExtractor()

	t.Run("missing file", func(t *testing.T) {
		if got := e.Extract(filepath.Join(t.TempDir(), "missing.mp3")); got != nil {
			t.Errorf("want nil for missing file, got %+v", got)
		}
	})

	t.Run("garbage content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.mp3")
		if err := os.WriteFile(path, []byte("this is not an mp3"), 0644); err != nil {
			t.Fatal(err)
		}
		if got := e.Extract(path); got != nil {
			t.Errorf("want nil for unparseable file, got %+v", got)
		}
	})
}

func TestExtractArtFailureReturnsNil(t *testing.T) {
	e := NewExtractor()
	if got := e.ExtractArt(filepath.Join(t.TempDir(), "missing.mp3")); got != nil {
		t.Errorf("want nil, got %+v", got)
	}
}
