package web

import (
	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

// ResourcesView is the data of the resource browser page.
type ResourcesView struct {
	Title   string
	Browser *ports.ResourceBrowser
}

type ResourceDetailView struct {
	Title    string
	Resource *domain.Resource
}

// RoadmapsView is the data of the roadmap browser page.
type RoadmapsView struct {
	Title   string
	Browser *ports.RoadmapBrowser
}

type RoadmapDetailView struct {
	Title   string
	Roadmap *domain.Roadmap
}

type ErrorView struct {
	Title   string
	Status  int
	Message string
}
