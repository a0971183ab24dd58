package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

func init() {
	color.NoColor = true
}

func strPtr(s string) *string { return &s }

func TestResources_Cards(t *testing.T) {
	var buf bytes.Buffer
	Resources(&buf, &ports.ResourceBrowser{
		Category: "DSA",
		Search:   "big",
		Items: []domain.Resource{
			{ID: "r1", Title: "Big O", Description: "complexity", Category: "DSA", Type: "Guide",
				Difficulty: strPtr("beginner"), Featured: true, Tags: []string{"math", "proofs"}},
		},
		Total: 4,
	})

	out := buf.String()
	assert.Contains(t, out, `Resources: DSA matching "big" (1 of 4)`)
	assert.Contains(t, out, "★ Big O  [DSA · Guide]")
	assert.Contains(t, out, "Beginner")
	assert.Contains(t, out, "#math #proofs")
	assert.Contains(t, out, "/resources/r1")
}

func TestResources_Empty(t *testing.T) {
	var buf bytes.Buffer
	Resources(&buf, &ports.ResourceBrowser{Category: "All", Items: []domain.Resource{}})
	assert.Contains(t, buf.String(), "No resources found matching your criteria.")
}

func TestRoadmaps_Sections(t *testing.T) {
	var buf bytes.Buffer
	Roadmaps(&buf, &ports.RoadmapBrowser{
		Featured: []domain.Roadmap{{ID: "m1", Title: "Frontend", Difficulty: "beginner", Featured: true,
			DownloadURL: strPtr("https://cdn.example.com/f.pdf"), Duration: strPtr("3 months")}},
		Others: []domain.Roadmap{{ID: "m2", Title: "Backend", Difficulty: "advanced"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Featured Roadmaps")
	assert.Contains(t, out, "All Roadmaps")
	assert.Contains(t, out, "Download: https://cdn.example.com/f.pdf")
	assert.Contains(t, out, "Download: not available")
	assert.Contains(t, out, "Duration: 3 months")
	assert.Contains(t, out, "Duration: Self-paced")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Frontend")), bytes.Index(buf.Bytes(), []byte("Backend")))
}

func TestRoadmaps_Empty(t *testing.T) {
	var buf bytes.Buffer
	Roadmaps(&buf, &ports.RoadmapBrowser{})
	assert.Contains(t, buf.String(), "No roadmaps available yet.")
	assert.NotContains(t, buf.String(), "Featured Roadmaps")
}
