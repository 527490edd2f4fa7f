// Package scanner enumerates audio files under a library root.
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"localfm/logger"
)

// ErrNoUsableFolder is returned when the library root itself cannot be
// opened, typically because the configured directory is gone or access
// was revoked. Callers should prompt for a new root rather than retry.
var ErrNoUsableFolder = errors.New("scanner: no usable music folder")

// audioExtensions is the allowlist of recognized audio file suffixes,
// matched case-insensitively.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".wav":  true,
	".flac": true,
	".aac":  true,
}

// FileInfo describes one audio file found during a scan.
type FileInfo struct {
	Path    string
	Name    string
	ModTime time.Time
}

// Scanner walks a directory tree collecting audio files.
type Scanner struct{}

// New creates a Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Scan recursively enumerates audio files under root. An unreadable
// subdirectory is logged and skipped; the rest of the walk continues.
// Only a failure to read root itself aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string) ([]FileInfo, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, ErrNoUsableFolder
	}

	var files []FileInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("skipping unreadable path",
				logger.String("path", path), logger.ErrorField(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsAudioFile(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Warn("skipping unstatable file",
				logger.String("path", path), logger.ErrorField(err))
			return nil
		}
		files = append(files, FileInfo{
			Path:    path,
			Name:    d.Name(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, ErrNoUsableFolder
	}
	return files, nil
}

// IsAudioFile reports whether path has a recognized audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}
