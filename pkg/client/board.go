package client

import (
	"context"
	"sync"

	"mission-service/internal/domain/entity"
	"mission-service/pkg/logger"
)

// PageSize is the number of missions shown per page
const PageSize = 6

// MissionAPI is the subset of Client the board needs
type MissionAPI interface {
	List(ctx context.Context) ([]entity.Mission, error)
	Create(ctx context.Context, input MissionInput) (*entity.Mission, error)
	Update(ctx context.Context, id string, input MissionInput) (*entity.Mission, error)
	Delete(ctx context.Context, id string) error
}

// Board holds the fetched mission list and the current page. Paging slices
// the in-memory list; every mutation is followed by a full re-fetch.
// Failures are logged and leave the list as it was.
type Board struct {
	api    MissionAPI
	logger logger.Logger

	mu       sync.Mutex
	missions []entity.Mission
	page     int
	loading  bool
}

// NewBoard creates an empty board on page 1
func NewBoard(api MissionAPI, logger logger.Logger) *Board {
	return &Board{
		api:    api,
		logger: logger,
		page:   1,
	}
}

// Load fetches the full mission list
func (b *Board) Load(ctx context.Context) error {
	b.setLoading(true)
	defer b.setLoading(false)

	missions, err := b.api.List(ctx)
	if err != nil {
		b.logger.Error("Error fetching missions", "error", err)
		return err
	}

	b.mu.Lock()
	b.missions = missions
	b.mu.Unlock()
	return nil
}

// Save creates a mission when id is empty and updates it otherwise, then reloads
func (b *Board) Save(ctx context.Context, id string, input MissionInput) error {
	var err error
	if id == "" {
		_, err = b.api.Create(ctx, input)
	} else {
		_, err = b.api.Update(ctx, id, input)
	}
	if err != nil {
		b.logger.Error("Error saving mission", "id", id, "error", err)
		return err
	}
	return b.Load(ctx)
}

// Remove deletes a mission, then reloads
func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.api.Delete(ctx, id); err != nil {
		b.logger.Error("Error deleting mission", "id", id, "error", err)
		return err
	}
	return b.Load(ctx)
}

// Missions returns a copy of the full fetched list
func (b *Board) Missions() []entity.Mission {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]entity.Mission(nil), b.missions...)
}

// Page returns the missions on the current page
func (b *Board) Page() []entity.Mission {
	b.mu.Lock()
	defer b.mu.Unlock()

	first := (b.page - 1) * PageSize
	if first >= len(b.missions) {
		return []entity.Mission{}
	}
	last := first + PageSize
	if last > len(b.missions) {
		last = len(b.missions)
	}
	return append([]entity.Mission(nil), b.missions[first:last]...)
}

// CurrentPage returns the 1-based page number
func (b *Board) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// HasNext reports whether missions exist past the current page
func (b *Board) HasNext() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page*PageSize < len(b.missions)
}

// HasPrev reports whether the current page is after the first
func (b *Board) HasPrev() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page > 1
}

// Next moves one page forward when there is one
func (b *Board) Next() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page*PageSize < len(b.missions) {
		b.page++
	}
}

// Prev moves one page back, stopping at page 1
func (b *Board) Prev() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page > 1 {
		b.page--
	}
}

// GoTo jumps to page n, clamped to the pages that exist
func (b *Board) GoTo(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pages := (len(b.missions) + PageSize - 1) / PageSize
	if n > pages {
		n = pages
	}
	if n < 1 {
		n = 1
	}
	b.page = n
}

// Loading reports whether a fetch is in flight
func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *Board) setLoading(v bool) {
	b.mu.Lock()
	b.loading = v
	b.mu.Unlock()
}
