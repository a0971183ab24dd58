package domain

import "fmt"

// PageState is the lifecycle of one page view.
//
//	Idle -> Loading -> Ready
//	               \-> Failed
type PageState string

const (
	PageIdle    PageState = "idle"
	PageLoading PageState = "loading"
	PageReady   PageState = "ready"
	PageFailed  PageState = "failed"
)

// Page holds the single fetch result of a page view.
type Page[T any] struct {
	state PageState
	items []T
	err   error
}

// NewPage returns an idle page.
func NewPage[T any]() *Page[T] {
	return &Page[T]{state: PageIdle}
}

func (p *Page[T]) State() PageState { return p.state }

// Items is empty until the page is Ready, and stays empty when it Failed.
func (p *Page[T]) Items() []T {
	if p.items == nil {
		return []T{}
	}
	return p.items
}

// Err is the fetch failure of a Failed page.
func (p *Page[T]) Err() error { return p.err }

// Begin marks the fetch as issued.
func (p *Page[T]) Begin() error {
	if p.state != PageIdle {
		return fmt.Errorf("%w: begin from %s", ErrInvalidPageTransition, p.state)
	}
	p.state = PageLoading
	return nil
}

// Resolve records the fetch outcome. A non-nil err leaves the items empty.
func (p *Page[T]) Resolve(items []T, err error) error {
	if p.state != PageLoading {
		return fmt.Errorf("%w: resolve from %s", ErrInvalidPageTransition, p.state)
	}
	if err != nil {
		p.state = PageFailed
		p.err = err
		p.items = []T{}
		return nil
	}
	p.state = PageReady
	p.items = items
	return nil
}
