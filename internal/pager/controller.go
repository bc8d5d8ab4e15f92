package pager

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"atlas/internal/dataset"
	"atlas/internal/domain"
	"atlas/internal/search"
)

// PageSize is the number of records appended per browse page
const PageSize = 20

// Mode identifies which sequence backs the visible list
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "browse"
}

// Controller decides which subset of the dataset is visible. In browse
// mode it accumulates fixed-size pages of the dataset in fetch order; in
// search mode it shows the filtered sequence for the current query.
// All operations are safe for concurrent use; internally every state
// transition runs under one mutex so page loads are never re-entered.
type Controller struct {
	mu    sync.Mutex
	store *dataset.Store

	mode          Mode
	nextPage      int // 1-based page index of the next browse page
	visibleBrowse []domain.Country
	hasMore       bool
	query         string
	visibleSearch []domain.Country
}

// NewController creates a controller in browse mode with nothing loaded
func NewController(store *dataset.Store) *Controller {
	return &Controller{
		store:    store,
		mode:     ModeBrowse,
		nextPage: 1,
		hasMore:  true,
	}
}

// OnDataReady is called once the dataset store becomes non-empty. It
// loads the first page if browsing hasn't started yet.
func (c *Controller) OnDataReady() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeBrowse && len(c.visibleBrowse) == 0 {
		c.loadNextPage()
	}
}

// LoadNextPage appends the next browse page. No-op in search mode.
func (c *Controller) LoadNextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeBrowse {
		c.loadNextPage()
	}
}

// loadNextPage appends all[start:end] for the next page and advances the
// page cursor. Callers must hold c.mu.
func (c *Controller) loadNextPage() {
	all := c.store.Get()
	start := (c.nextPage - 1) * PageSize
	if start >= len(all) {
		c.hasMore = false
		return
	}

	end := start + PageSize
	if end > len(all) {
		end = len(all)
	}

	c.visibleBrowse = append(c.visibleBrowse, all[start:end]...)
	c.hasMore = end < len(all)
	c.nextPage++

	log.Debug("page loaded", "page", c.nextPage-1, "visible", len(c.visibleBrowse), "total", len(all))
}

// OnQueryChanged updates the active query. A non-empty query switches to
// search mode and recomputes the filtered sequence. An empty query
// returns to browse mode restarted at page 1; the prior browse position
// is deliberately not resumed.
func (c *Controller) OnQueryChanged(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.query = query

	if query != "" {
		c.mode = ModeSearch
		c.visibleSearch = search.Filter(c.store.Get(), query)
		return
	}

	c.mode = ModeBrowse
	c.visibleBrowse = nil
	c.nextPage = 1
	c.hasMore = true
	c.loadNextPage()
}

// OnNearEnd is called when the row at lastVisibleIndex is about to be
// displayed. It loads the next page only when that row is the last
// loaded one and more pages remain. No-op in search mode.
func (c *Controller) OnNearEnd(lastVisibleIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != ModeBrowse {
		return
	}
	if lastVisibleIndex == len(c.visibleBrowse)-1 && c.hasMore {
		c.loadNextPage()
	}
}

// VisibleCount returns the size of the active sequence
func (c *Controller) VisibleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.visible())
}

// VisibleAt returns the record at index in the active sequence. An index
// outside [0, VisibleCount()) is a caller bug and panics.
func (c *Controller) VisibleAt(index int) domain.Country {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := c.visible()
	if index < 0 || index >= len(visible) {
		panic(fmt.Sprintf("pager: index %d out of range [0, %d)", index, len(visible)))
	}
	return visible[index]
}

// Window returns a copy of the active sequence's [start, end) slice,
// clamped to the visible bounds. Used by the viewport to render only the
// rows on screen.
func (c *Controller) Window(start, end int) []domain.Country {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := c.visible()
	if start < 0 {
		start = 0
	}
	if end > len(visible) {
		end = len(visible)
	}
	if start >= end {
		return nil
	}

	window := make([]domain.Country, end-start)
	copy(window, visible[start:end])
	return window
}

// visible returns the sequence backing the current mode. Callers must
// hold c.mu.
func (c *Controller) visible() []domain.Country {
	if c.mode == ModeSearch {
		return c.visibleSearch
	}
	return c.visibleBrowse
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// HasMore reports whether more browse pages remain
func (c *Controller) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// Query returns the last-seen search query
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// PagesLoaded returns how many browse pages have been appended
func (c *Controller) PagesLoaded() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextPage - 1
}
