// Package web renders the server-side HTML pages of the catalog.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/csecompass/catalog/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS returns the stylesheet and other assets served under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page template names accepted by Renderer.Render.
const (
	PageResources      = "resources"
	PageResourceDetail = "resource_detail"
	PageRoadmaps       = "roadmaps"
	PageRoadmapDetail  = "roadmap_detail"
	PageError          = "error"
)

var pageNames = []string{PageResources, PageResourceDetail, PageRoadmaps, PageRoadmapDetail, PageError}

// Renderer implements echo.Renderer. Every page is parsed together with the
// shared layout into its own template set.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	funcs := template.FuncMap{
		"richText": func(s string) template.HTML {
			return template.HTML(policy.Sanitize(s))
		},
		"toneClass":       toneClass,
		"difficultyLabel": domain.DifficultyLabel,
		"filterURL":       filterURL,
		"deref":           deref,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("web: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// toneClass maps a difficulty to its badge CSS class.
func toneClass(difficulty string) string {
	switch domain.ClassifyDifficulty(difficulty) {
	case domain.ToneBeginner:
		return "badge badge-green"
	case domain.ToneIntermediate:
		return "badge badge-primary"
	default:
		return "badge badge-purple"
	}
}

// filterURL builds the resource browser link for a category button,
// keeping the current search term.
func filterURL(category, search string) string {
	q := url.Values{}
	if category != "" && category != domain.CategoryAll {
		q.Set("category", category)
	}
	if search != "" {
		q.Set("search", search)
	}
	if len(q) == 0 {
		return "/resources"
	}
	return "/resources?" + q.Encode()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
