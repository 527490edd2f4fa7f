package model

import "time"

// Default values applied when a tag field is missing from a file.
const (
	UnknownTitle  = "Unknown Title"
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// LibraryEntry represents one physical audio file in the local library.
//
// ID is a deterministic hash of FilePath, so the same file always maps
// to the same row across sync passes. Entries are never mutated in
// place: a change to the underlying file is a delete plus re-add.
type LibraryEntry struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	FilePath     string    `json:"-" gorm:"uniqueIndex;not null"`
	FileName     string    `json:"fileName"`
	ModifiedTime time.Time `json:"modifiedTime" gorm:"index"`
	Title        string    `json:"title"`
	Artist       string    `json:"artist"`
	Album        string    `json:"album"`
	Genre        string    `json:"genre"` // comma-joined free text, may be empty
	Year         int       `json:"year"`  // 0 = unknown
	Mood         string    `json:"mood"`  // free text, may be empty
	Duration     float64   `json:"duration"` // seconds, 0 = unknown
}

// Decade returns the coarse temporal grouping key for the entry,
// floor(year/10)*10. Year 0 yields decade 0 ("unknown").
func (e *LibraryEntry) Decade() int {
	return e.Year / 10 * 10
}

// AlbumArt is artwork embedded in an audio file, linked 1:1 to a
// LibraryEntry by sharing its ID. Absence is a valid permanent state.
type AlbumArt struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Data     []byte `json:"-"`
	MimeType string `json:"mimeType"`
	FilePath string `json:"-" gorm:"uniqueIndex"` // kept for diagnostics and relinking
}
