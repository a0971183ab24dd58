package handler

import (
	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

const (
	msgNoResources = "No resources found matching your criteria."
	msgNoRoadmaps  = "No roadmaps available yet."
)

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toResourceResponse(r domain.Resource) resourceResponse {
	return resourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		Difficulty:  r.Difficulty,
		Featured:    r.Featured,
		Tags:        orEmpty(r.Tags),
		Resources:   orEmpty(r.Resources),
		CreatedAt:   r.CreatedAt.UTC(),
		Links: itemLinks{
			Self: "/api/v1" + r.Path(),
			Page: r.Path(),
		},
	}
}

func toBrowseResourcesResponse(b *ports.ResourceBrowser) browseResourcesResponse {
	items := make([]resourceResponse, len(b.Items))
	for i, r := range b.Items {
		items[i] = toResourceResponse(r)
	}
	resp := browseResourcesResponse{
		State:      b.State,
		Category:   b.Category,
		Search:     b.Search,
		Categories: b.Categories,
		Total:      b.Total,
		Count:      len(items),
		Items:      items,
	}
	if b.Empty() {
		resp.Message = msgNoResources
	}
	return resp
}

func toRoadmapResponse(r domain.Roadmap) roadmapResponse {
	return roadmapResponse{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Difficulty:      r.Difficulty,
		DifficultyLabel: domain.DifficultyLabel(r.Difficulty),
		DifficultyTone:  domain.ClassifyDifficulty(r.Difficulty),
		Featured:        r.Featured,
		Technologies:    orEmpty(r.Technologies),
		Duration:        r.DurationLabel(),
		DownloadURL:     r.DownloadURL,
		Downloadable:    r.Downloadable(),
		CreatedAt:       r.CreatedAt.UTC(),
		Links: itemLinks{
			Self: "/api/v1" + r.Path(),
			Page: r.Path(),
		},
	}
}

func toRoadmapResponses(items []domain.Roadmap) []roadmapResponse {
	out := make([]roadmapResponse, len(items))
	for i, r := range items {
		out[i] = toRoadmapResponse(r)
	}
	return out
}

func toBrowseRoadmapsResponse(b *ports.RoadmapBrowser) browseRoadmapsResponse {
	resp := browseRoadmapsResponse{
		State:    b.State,
		Featured: toRoadmapResponses(b.Featured),
		Others:   toRoadmapResponses(b.Others),
	}
	if b.Empty() {
		resp.Message = msgNoRoadmaps
	}
	return resp
}
