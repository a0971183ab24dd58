package handler

import (
	"time"

	"github.com/csecompass/catalog/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type browseResourcesQuery struct {
	Category string `query:"category" validate:"omitempty,category"`
	Search   string `query:"search"   validate:"max=200"`
}

// --- Response types ---
// Kept apart from the domain types so the JSON contract does not follow
// internal changes.

type itemLinks struct {
	Self string `json:"self"`
	Page string `json:"page"`
}

type resourceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Difficulty  *string   `json:"difficulty"`
	Featured    bool      `json:"featured"`
	Tags        []string  `json:"tags"`
	Resources   []string  `json:"resources"`
	CreatedAt   time.Time `json:"created_at"`
	Links       itemLinks `json:"_links"`
}

type browseResourcesResponse struct {
	State      domain.PageState   `json:"state"`
	Category   string             `json:"category"`
	Search     string             `json:"search"`
	Categories []string           `json:"categories"`
	// Total is the size of the fetched set; Count the number of matches.
	Total int                `json:"total"`
	Count int                `json:"count"`
	Items []resourceResponse `json:"items"`
	// Message is set when nothing matches the filter.
	Message string `json:"message,omitempty"`
}

type roadmapResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Difficulty      string                `json:"difficulty"`
	DifficultyLabel string                `json:"difficulty_label"`
	DifficultyTone  domain.DifficultyTone `json:"difficulty_tone"`
	Featured        bool                  `json:"featured"`
	Technologies    []string              `json:"technologies"`
	Duration        string                `json:"duration"`
	DownloadURL     *string               `json:"download_url"`
	Downloadable    bool                  `json:"downloadable"`
	CreatedAt       time.Time             `json:"created_at"`
	Links           itemLinks             `json:"_links"`
}

type browseRoadmapsResponse struct {
	State    domain.PageState  `json:"state"`
	Featured []roadmapResponse `json:"featured"`
	Others   []roadmapResponse `json:"others"`
	Message  string            `json:"message,omitempty"`
}

type categoriesResponse struct {
	Default    string   `json:"default"`
	Categories []string `json:"categories"`
}
