package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.m4a", true},
		{"song.ogg", true},
		{"song.wav", true},
		{"song.FLAC", true},
		{"song.aac", true},
		{"song.txt", false},
		{"song.mp4", false},
		{"song", false},
		{"cover.jpg", false},
	}
	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestScanRecursive(t *testing.T) {
	root := t.TempDir()
	files := []string{
		"a.mp3",
		"sub/b.flac",
		"sub/deeper/c.ogg",
		"sub/readme.txt",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := New().Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d files, want 3: %+v", len(got), got)
	}
	for _, f := range got {
		if f.Name == "" || f.ModTime.IsZero() {
			t.Errorf("incomplete FileInfo: %+v", f)
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := New().Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNoUsableFolder) {
		t.Errorf("err = %v, want ErrNoUsableFolder", err)
	}
}

func TestScanCancelled(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.mp3"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Scan(ctx, root); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
