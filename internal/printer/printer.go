// Package printer writes catalog listings for the terminal.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	purple = color.New(color.FgMagenta)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

// Success prints a success message in green with a checkmark prefix.
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ "+format+"\n", a...)
}

// Warning prints a warning message in yellow.
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! "+format+"\n", a...)
}

// Error prints title and explanation to stderr and returns a plain error for
// Cobra, which is configured not to print it again.
func Error(title, explanation string) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}

// Resources prints the resource browser result as a list of cards.
func Resources(w io.Writer, b *ports.ResourceBrowser) {
	header := fmt.Sprintf("Resources: %s", b.Category)
	if b.Search != "" {
		header += fmt.Sprintf(" matching %q", b.Search)
	}
	bold.Fprintf(w, "%s (%d of %d)\n\n", header, len(b.Items), b.Total)

	if b.Empty() {
		Warning(w, "No resources found matching your criteria.")
		fmt.Fprintln(w, "Try adjusting your search or category filter.")
		return
	}

	for _, r := range b.Items {
		star := "  "
		if r.Featured {
			star = yellow.Sprint("★ ")
		}
		fmt.Fprintf(w, "%s%s  %s\n", star, bold.Sprint(r.Title), cyan.Sprintf("[%s · %s]", r.Category, r.Type))
		if r.Difficulty != nil {
			fmt.Fprintf(w, "    %s\n", tone(*r.Difficulty).Sprint(domain.DifficultyLabel(*r.Difficulty)))
		}
		if r.Description != "" {
			fmt.Fprintf(w, "    %s\n", r.Description)
		}
		if len(r.Tags) > 0 {
			fmt.Fprintf(w, "    %s\n", faint.Sprint("#"+strings.Join(r.Tags, " #")))
		}
		fmt.Fprintf(w, "    %s\n\n", faint.Sprint(r.Path()))
	}
}

// Roadmaps prints the featured section followed by all other roadmaps.
func Roadmaps(w io.Writer, b *ports.RoadmapBrowser) {
	if b.Empty() {
		Warning(w, "No roadmaps available yet.")
		return
	}
	if len(b.Featured) > 0 {
		bold.Fprintln(w, "Featured Roadmaps")
		for _, r := range b.Featured {
			roadmap(w, r)
		}
	}
	if len(b.Others) > 0 {
		bold.Fprintln(w, "All Roadmaps")
		for _, r := range b.Others {
			roadmap(w, r)
		}
	}
}

func roadmap(w io.Writer, r domain.Roadmap) {
	fmt.Fprintf(w, "  %s  %s\n", bold.Sprint(r.Title), tone(r.Difficulty).Sprint(domain.DifficultyLabel(r.Difficulty)))
	if r.Description != "" {
		fmt.Fprintf(w, "    %s\n", r.Description)
	}
	if len(r.Technologies) > 0 {
		fmt.Fprintf(w, "    %s\n", cyan.Sprint(strings.Join(r.Technologies, ", ")))
	}
	fmt.Fprintf(w, "    Duration: %s\n", r.DurationLabel())
	if r.Downloadable() {
		fmt.Fprintf(w, "    Download: %s\n", *r.DownloadURL)
	} else {
		fmt.Fprintf(w, "    %s\n", faint.Sprint("Download: not available"))
	}
	fmt.Fprintln(w)
}

func tone(difficulty string) *color.Color {
	switch domain.ClassifyDifficulty(difficulty) {
	case domain.ToneBeginner:
		return green
	case domain.ToneIntermediate:
		return cyan
	default:
		return purple
	}
}
