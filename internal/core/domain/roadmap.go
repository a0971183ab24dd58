package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// CollectionRoadmaps is the table / collection name of roadmaps.
const CollectionRoadmaps = "roadmaps"

const selfPaced = "Self-paced"

// Roadmap is a structured learning path.
type Roadmap struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Difficulty   string    `json:"difficulty" bson:"difficulty"`
	Featured     bool      `json:"featured" bson:"featured"`
	Technologies []string  `json:"technologies,omitempty" bson:"technologies,omitempty"`
	Duration     *string   `json:"duration,omitempty" bson:"duration,omitempty"`
	DownloadURL  *string   `json:"download_url,omitempty" bson:"download_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Path is the detail page of the roadmap.
func (r Roadmap) Path() string {
	return "/roadmaps/" + r.ID
}

// DurationLabel returns the duration, or "Self-paced" when none is set.
func (r Roadmap) DurationLabel() string {
	if r.Duration == nil || *r.Duration == "" {
		return selfPaced
	}
	return *r.Duration
}

// Downloadable reports whether the roadmap carries a download link.
func (r Roadmap) Downloadable() bool {
	return r.DownloadURL != nil && *r.DownloadURL != ""
}

// PartitionRoadmaps splits items into featured and the rest, keeping the
// relative input order in both.
func PartitionRoadmaps(items []Roadmap) (featured, others []Roadmap) {
	featured = make([]Roadmap, 0, len(items))
	others = make([]Roadmap, 0, len(items))
	for _, r := range items {
		if r.Featured {
			featured = append(featured, r)
		} else {
			others = append(others, r)
		}
	}
	return featured, others
}

// DifficultyTone is the colour family used for a difficulty badge.
type DifficultyTone string

const (
	ToneBeginner     DifficultyTone = "beginner"
	ToneIntermediate DifficultyTone = "intermediate"
	ToneAdvanced     DifficultyTone = "advanced"
)

// ClassifyDifficulty maps a free-form difficulty to a badge tone. Values that
// mention neither beginner nor intermediate fall back to advanced.
func ClassifyDifficulty(difficulty string) DifficultyTone {
	d := strings.ToLower(difficulty)
	switch {
	case strings.Contains(d, "beginner"):
		return ToneBeginner
	case strings.Contains(d, "intermediate"):
		return ToneIntermediate
	default:
		return ToneAdvanced
	}
}

// DifficultyLabel upper-cases the first character of difficulty.
func DifficultyLabel(difficulty string) string {
	r, size := utf8.DecodeRuneInString(difficulty)
	if r == utf8.RuneError {
		return difficulty
	}
	return string(unicode.ToUpper(r)) + difficulty[size:]
}
