package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub source
// ---------------------------------------------------------------------------

type stubResourceSource struct {
	items   []domain.Resource
	listErr error
	getErr  error
	calls   int
}

func (s *stubResourceSource) ListResources(_ context.Context) ([]domain.Resource, error) {
	s.calls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubResourceSource) GetResource(_ context.Context, id string) (*domain.Resource, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, r := range s.items {
		if r.ID == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, domain.ErrResourceNotFound
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func seedResources() []domain.Resource {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Resource{
		{ID: "r1", Title: "Big O", Category: "DSA", Description: "complexity", Featured: true, CreatedAt: now},
		{ID: "r2", Title: "REST", Category: "Web Dev", Description: "apis", CreatedAt: now.Add(-time.Hour)},
		// Deliberately older than r4 but listed first: the service must keep source order.
		{ID: "r3", Title: "Heaps", Category: "DSA", Description: "priority queues", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "r4", Title: "Tries", Category: "DSA", Description: "prefix trees", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func resourceIDs(items []domain.Resource) string {
	parts := make([]string, len(items))
	for i, r := range items {
		parts[i] = r.ID
	}
	return strings.Join(parts, ",")
}

// ---------------------------------------------------------------------------
// Browse tests
// ---------------------------------------------------------------------------

func TestResourceService_Browse_DefaultsToAll(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	b, err := svc.Browse(context.Background(), ports.BrowseResourcesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Category != domain.CategoryAll {
		t.Errorf("expected category %q, got %q", domain.CategoryAll, b.Category)
	}
	if b.State != domain.PageReady {
		t.Errorf("expected state ready, got %s", b.State)
	}
	if got := resourceIDs(b.Items); got != "r1,r2,r3,r4" {
		t.Errorf("expected all items in source order, got %s", got)
	}
	if b.Total != 4 {
		t.Errorf("expected total 4, got %d", b.Total)
	}
	if len(b.Categories) != len(domain.Categories)+1 {
		t.Errorf("expected category selectors incl. All, got %v", b.Categories)
	}
}

func TestResourceService_Browse_CategoryFilterKeepsSourceOrder(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	b, err := svc.Browse(context.Background(), ports.BrowseResourcesInput{Category: "DSA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resourceIDs(b.Items); got != "r1,r3,r4" {
		t.Errorf("expected r1,r3,r4 (no re-sort), got %s", got)
	}
}

func TestResourceService_Browse_SearchOnDescription(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	b, _ := svc.Browse(context.Background(), ports.BrowseResourcesInput{Category: "All", Search: "API"})
	if got := resourceIDs(b.Items); got != "r2" {
		t.Errorf("expected r2, got %s", got)
	}
}

func TestResourceService_Browse_NoMatches(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	b, err := svc.Browse(context.Background(), ports.BrowseResourcesInput{Category: "Blockchain"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Empty() {
		t.Errorf("expected empty browser, got %s", resourceIDs(b.Items))
	}
	if b.State != domain.PageReady {
		t.Errorf("no-match is still a ready page, got %s", b.State)
	}
}

func TestResourceService_Browse_FetchesExactlyOnce(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	_, _ = svc.Browse(context.Background(), ports.BrowseResourcesInput{Search: "o"})
	if src.calls != 1 {
		t.Errorf("expected 1 fetch, got %d", src.calls)
	}
}

func TestResourceService_Browse_FetchFailureYieldsEmptyFailedPage(t *testing.T) {
	var buf bytes.Buffer
	src := &stubResourceSource{listErr: errors.New("503 from upstream")}
	svc := NewResourceService(src, zerolog.New(&buf))

	b, err := svc.Browse(context.Background(), ports.BrowseResourcesInput{})
	if err != nil {
		t.Fatalf("fetch failure must not propagate, got %v", err)
	}
	if b.State != domain.PageFailed {
		t.Errorf("expected failed state, got %s", b.State)
	}
	if b.Items == nil || len(b.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %v", b.Items)
	}
	if !strings.Contains(buf.String(), "fetch failed") || !strings.Contains(buf.String(), "503 from upstream") {
		t.Errorf("expected failure to be logged, got %q", buf.String())
	}
}

func TestResourceService_Browse_InvalidCategory(t *testing.T) {
	src := &stubResourceSource{items: seedResources()}
	svc := NewResourceService(src, discardLogger)

	_, err := svc.Browse(context.Background(), ports.BrowseResourcesInput{Category: "Gaming"})
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if src.calls != 0 {
		t.Errorf("invalid filter must not fetch, got %d calls", src.calls)
	}
}

// ---------------------------------------------------------------------------
// Get tests
// ---------------------------------------------------------------------------

func TestResourceService_Get_Found(t *testing.T) {
	svc := NewResourceService(&stubResourceSource{items: seedResources()}, discardLogger)

	r, err := svc.Get(context.Background(), "r2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "REST" {
		t.Errorf("expected REST, got %q", r.Title)
	}
}

func TestResourceService_Get_NotFound(t *testing.T) {
	svc := NewResourceService(&stubResourceSource{items: seedResources()}, discardLogger)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestResourceService_Get_FetchFailure(t *testing.T) {
	svc := NewResourceService(&stubResourceSource{getErr: errors.New("timeout")}, discardLogger)

	_, err := svc.Get(context.Background(), "r1")
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Errorf("expected ErrFetchFailure, got %v", err)
	}
}
