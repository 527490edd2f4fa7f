package model

import "time"

// CriterionAttribute is the track attribute a criterion matches on.
type CriterionAttribute string

const (
	AttrArtist CriterionAttribute = "artist"
	AttrAlbum  CriterionAttribute = "album"
	AttrGenre  CriterionAttribute = "genre"
	AttrMood   CriterionAttribute = "mood"
	AttrDecade CriterionAttribute = "decade"
)

// Criterion is one weighted matching rule of a radio station. Weights
// are relative; they are renormalized across sibling criteria at
// scoring time and need not sum to 1 as stored.
type Criterion struct {
	Attribute CriterionAttribute `json:"attribute"`
	Value     string             `json:"value"`
	Weight    float64            `json:"weight"`
}

// RadioStation is a named, persisted playlist definition: a set of
// weighted criteria used to rank and select tracks for playback.
type RadioStation struct {
	ID              string      `json:"id" gorm:"primaryKey"`
	Name            string      `json:"name" gorm:"index;not null"`
	Description     string      `json:"description"`
	Criteria        []Criterion `json:"criteria" gorm:"serializer:json"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	IsAutoGenerated bool        `json:"isAutoGenerated"`
	// IsTemporary marks a station created implicitly from a single
	// played track. Still persisted under the same schema.
	IsTemporary bool       `json:"isTemporary"`
	ImagePath   string     `json:"imagePath"`
	LastPlayed  *time.Time `json:"lastPlayed"`
	IsFavorite  bool       `json:"isFavorite"`
}

// StationPatch is a partial update merged onto an existing station.
// Nil fields are left untouched.
type StationPatch struct {
	Name        *string
	Description *string
	Criteria    []Criterion
	ImagePath   *string
	LastPlayed  *time.Time
	IsFavorite  *bool
}

// TrackScore is the ephemeral result of scoring one track against a
// station's criteria. Never persisted.
type TrackScore struct {
	Track *LibraryEntry
	Score float64
}
