package service

import (
	"errors"
	"fmt"
	"strings"

	"movie-booking-cli/model"
)

// Persister is the storage contract the services run against. The
// concrete implementation lives in the store package; tests substitute
// a temp-dir store or a stub.
type Persister interface {
	LoadShows() ([]*model.Show, error)
	SaveShows([]*model.Show) error
	LoadBookings() ([]*model.Booking, error)
	SaveBookings([]*model.Booking) error
}

// Catalog owns the set of shows in insertion order. It is not safe for
// concurrent use; the program drives it from a single goroutine.
type Catalog struct {
	store Persister
	shows []*model.Show
}

// NewCatalog loads the catalog from storage. When storage holds no
// shows yet, seed is installed and persisted instead.
func NewCatalog(store Persister, seed []*model.Show) (*Catalog, error) {
	shows, err := store.LoadShows()
	if err != nil {
		return nil, fmt.Errorf("load shows: %w", err)
	}
	if shows == nil && len(seed) > 0 {
		shows = seed
		if err := store.SaveShows(shows); err != nil {
			return nil, fmt.Errorf("save seeded shows: %w", err)
		}
	}
	return &Catalog{store: store, shows: shows}, nil
}

// Find returns the show with the given id.
func (c *Catalog) Find(id string) (*model.Show, bool) {
	id = strings.TrimSpace(id)
	for _, s := range c.shows {
		if s.ShowID == id {
			return s, true
		}
	}
	return nil, false
}

// Shows returns the catalog in insertion order. The slice is shared;
// callers must not modify it.
func (c *Catalog) Shows() []*model.Show {
	return c.shows
}

// Add creates a show with a fresh all-available grid, appends it to
// the catalog and persists. Ids are sequential ("S1", "S2", ...) from
// the current catalog length; since shows are never removed the scheme
// cannot collide in practice.
func (c *Catalog) Add(title, when string, price float64, rows, cols int) (*model.Show, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New("rows and cols must be positive")
	}
	if rows > 26 {
		return nil, errors.New("rows must be at most 26 (row labels run A-Z)")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}
	show := &model.Show{
		ShowID: fmt.Sprintf("S%d", len(c.shows)+1),
		Title:  strings.TrimSpace(title),
		Time:   strings.TrimSpace(when),
		Price:  price,
		Rows:   rows,
		Cols:   cols,
		Seats:  model.NewSeatGrid(rows, cols),
	}
	c.shows = append(c.shows, show)
	if err := c.store.SaveShows(c.shows); err != nil {
		return show, fmt.Errorf("save shows: %w", err)
	}
	return show, nil
}
