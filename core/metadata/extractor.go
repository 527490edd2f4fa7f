// Package metadata reads tag fields and embedded artwork from audio
// files. Extraction failure is an expected per-file condition: both
// entry points return nil rather than an error so a bad file never
// aborts a sync batch.
package metadata

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"localfm/logger"
)

// Tags holds the fields extracted from one audio file.
type Tags struct {
	Title    string
	Artist   string
	Album    string
	Genres   []string
	Year     int
	Mood     string
	Duration float64
}

// Art holds artwork embedded in an audio file.
type Art struct {
	Data     []byte
	MimeType string
}

// Extractor reads tags and artwork from a file path. Implementations
// must not panic past this boundary; nil means "could not extract".
type Extractor interface {
	Extract(path string) *Tags
	ExtractArt(path string) *Art
}

// TagExtractor is the dhowden/tag backed Extractor.
type TagExtractor struct{}

// NewExtractor creates a TagExtractor.
func NewExtractor() *TagExtractor {
	return &TagExtractor{}
}

// Extract reads tag fields from the file at path. On any failure it
// logs and returns nil.
func (e *TagExtractor) Extract(path string) (tags *Tags) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("tag reader panicked",
				logger.String("path", path), logger.Any("panic", r))
			tags = nil
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("failed to open file for tag reading",
			logger.String("path", path), logger.ErrorField(err))
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		logger.Warn("failed to read tags",
			logger.String("path", path), logger.ErrorField(err))
		return nil
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		// Fall back to the file name without its extension.
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &Tags{
		Title:  title,
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
		Genres: splitGenres(m.Genre()),
		Year:   m.Year(),
		Mood:   moodFrom(m),
	}
}

// ExtractArt reads embedded artwork from the file at path, or nil if
// the file carries none or cannot be parsed.
func (e *TagExtractor) ExtractArt(path string) (art *Art) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("tag reader panicked reading artwork",
				logger.String("path", path), logger.Any("panic", r))
			art = nil
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil
	}
	return &Art{Data: pic.Data, MimeType: pic.MIMEType}
}

// splitGenres splits a raw genre field on commas and semicolons into
// trimmed, non-empty tokens.
func splitGenres(raw string) []string {
	raw = strings.ReplaceAll(raw, ";", ",")
	var out []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// moodFrom looks for an explicit mood frame (ID3v2.4 TMOO or a MOOD
// vorbis comment). Most files carry none, which is fine.
func moodFrom(m tag.Metadata) string {
	for _, key := range []string{"TMOO", "MOOD", "mood"} {
		if v, ok := m.Raw()[key]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
