package domain

import (
	"strings"
	"time"
)

// CollectionResources is the table / collection name of resources.
const CollectionResources = "resources"

// CategoryAll is the selector value that matches every category.
const CategoryAll = "All"

// Categories lists the fixed resource categories in display order.
var Categories = []string{
	"DSA",
	"Web Dev",
	"App Dev",
	"Cyber Security",
	"AI/ML",
	"Cloud & DevOps",
	"Automation",
	"Competitive Coding",
	"System Design",
	"Blockchain",
}

// CategorySelectors returns the category filter options, "All" first.
func CategorySelectors() []string {
	out := make([]string, 0, len(Categories)+1)
	out = append(out, CategoryAll)
	return append(out, Categories...)
}

// IsCategorySelector reports whether s is a valid category filter value.
// The empty string counts as "All".
func IsCategorySelector(s string) bool {
	if s == "" || s == CategoryAll {
		return true
	}
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Resource is a curated learning-material entry.
type Resource struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Type        string    `json:"type" bson:"type"`
	Difficulty  *string   `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Resources   []string  `json:"resources,omitempty" bson:"resources,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Path is the detail page of the resource.
func (r Resource) Path() string {
	return "/resources/" + r.ID
}

// ResourceFilter is the browser's filter state.
type ResourceFilter struct {
	Category string
	Search   string
}

// Normalized returns the filter with the default category applied.
func (f ResourceFilter) Normalized() ResourceFilter {
	if f.Category == "" {
		f.Category = CategoryAll
	}
	return f
}

// Matches reports whether r passes the filter.
func (f ResourceFilter) Matches(r Resource) bool {
	f = f.Normalized()
	if f.Category != CategoryAll && r.Category != f.Category {
		return false
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term)
}

// FilterResources returns the ordered subsequence of items matching category
// and search. items is never modified; the result is a fresh slice.
func FilterResources(items []Resource, category, search string) []Resource {
	f := ResourceFilter{Category: category, Search: search}
	out := make([]Resource, 0, len(items))
	for _, r := range items {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
