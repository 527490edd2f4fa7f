package library

import "testing"

func TestHashIDDeterministic(t *testing.T) {
	paths := []string{
		"/music/artist/album/track.mp3",
		"/music/artist/album/track2.mp3",
		"",
		"/music/ünïcôdé/трек.flac",
	}
	for _, p := range paths {
		first := HashID(p)
		for i := 0; i < 5; i++ {
			if got := HashID(p); got != first {
				t.Errorf("HashID(%q) unstable: %q then %q", p, first, got)
			}
		}
	}
}

func TestHashIDKnownValues(t *testing.T) {
	// Fixed outputs of the base-31 UTF-16 polynomial hash. These pin
	// the exact function: ids persisted by older builds must keep
	// resolving to the same rows.
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"a", "97"},
		{"abc", "96354"},
		{"hello", "99162322"},
	}
	for _, tt := range tests {
		if got := HashID(tt.in); got != tt.want {
			t.Errorf("HashID(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestHashIDDistinguishesPaths(t *testing.T) {
	a := HashID("/music/a.mp3")
	b := HashID("/music/b.mp3")
	if a == b {
		t.Errorf("different paths hashed identically: %s", a)
	}
}
