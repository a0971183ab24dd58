package service

import (
	"context"
	"errors"
	"testing"

	"github.com/csecompass/catalog/internal/core/domain"
)

type stubRoadmapSource struct {
	items   []domain.Roadmap
	listErr error
	getErr  error
	calls   int
}

func (s *stubRoadmapSource) ListRoadmaps(_ context.Context) ([]domain.Roadmap, error) {
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubRoadmapSource) GetRoadmap(_ context.Context, id string) (*domain.Roadmap, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, r := range s.items {
		if r.ID == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, domain.ErrRoadmapNotFound
}

func seedRoadmaps() []domain.Roadmap {
	return []domain.Roadmap{
		{ID: "m1", Title: "Frontend", Difficulty: "beginner", Featured: true},
		{ID: "m2", Title: "Backend", Difficulty: "intermediate", Featured: true},
		{ID: "m3", Title: "DevOps", Difficulty: "advanced"},
		{ID: "m4", Title: "ML", Difficulty: "intermediate"},
	}
}

func roadmapIDs(items []domain.Roadmap) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.ID
	}
	return out
}

func TestRoadmapService_Browse_Partitions(t *testing.T) {
	src := &stubRoadmapSource{items: seedRoadmaps()}
	svc := NewRoadmapService(src, discardLogger)

	b, err := svc.Browse(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.State != domain.PageReady {
		t.Errorf("expected ready, got %s", b.State)
	}
	if got := roadmapIDs(b.Featured); len(got) != 2 || got[0] != "m1" || got[1] != "m2" {
		t.Errorf("featured: expected [m1 m2], got %v", got)
	}
	if got := roadmapIDs(b.Others); len(got) != 2 || got[0] != "m3" || got[1] != "m4" {
		t.Errorf("others: expected [m3 m4], got %v", got)
	}
	if src.calls != 1 {
		t.Errorf("expected exactly one fetch, got %d", src.calls)
	}
}

func TestRoadmapService_Browse_EmptyFetch(t *testing.T) {
	svc := NewRoadmapService(&stubRoadmapSource{}, discardLogger)

	b, err := svc.Browse(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Empty() {
		t.Error("expected empty browser")
	}
	if b.State != domain.PageReady {
		t.Errorf("expected ready, got %s", b.State)
	}
}

func TestRoadmapService_Browse_FetchFailure(t *testing.T) {
	svc := NewRoadmapService(&stubRoadmapSource{listErr: errors.New("boom")}, discardLogger)

	b, err := svc.Browse(context.Background())
	if err != nil {
		t.Fatalf("fetch failure must not propagate, got %v", err)
	}
	if b.State != domain.PageFailed || !b.Empty() {
		t.Errorf("expected failed empty browser, got state=%s featured=%d others=%d", b.State, len(b.Featured), len(b.Others))
	}
}

func TestRoadmapService_Get(t *testing.T) {
	svc := NewRoadmapService(&stubRoadmapSource{items: seedRoadmaps()}, discardLogger)

	r, err := svc.Get(context.Background(), "m3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "DevOps" {
		t.Errorf("expected DevOps, got %q", r.Title)
	}

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrRoadmapNotFound) {
		t.Errorf("expected ErrRoadmapNotFound, got %v", err)
	}
}

func TestRoadmapService_Get_FetchFailure(t *testing.T) {
	svc := NewRoadmapService(&stubRoadmapSource{getErr: errors.New("dial tcp")}, discardLogger)

	if _, err := svc.Get(context.Background(), "m1"); !errors.Is(err, domain.ErrFetchFailure) {
		t.Errorf("expected ErrFetchFailure, got %v", err)
	}
}
