package service

import (
	"errors"
	"testing"

	"movie-booking-cli/model"
)

// memStore is an in-memory Persister for tests. failSave makes every
// save return an error.
type memStore struct {
	shows    []*model.Show
	bookings []*model.Booking
	failSave bool
}

func (m *memStore) LoadShows() ([]*model.Show, error) { return m.shows, nil }

func (m *memStore) SaveShows(shows []*model.Show) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.shows = shows
	return nil
}

func (m *memStore) LoadBookings() ([]*model.Booking, error) { return m.bookings, nil }

func (m *memStore) SaveBookings(bookings []*model.Booking) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.bookings = bookings
	return nil
}

func demoShow() *model.Show {
	return &model.Show{
		ShowID: "S1",
		Title:  "The Great Adventure",
		Time:   "2025-11-26 18:00",
		Price:  150.0,
		Rows:   5,
		Cols:   8,
		Seats:  model.NewSeatGrid(5, 8),
	}
}

func newTestEngine(t *testing.T, shows ...*model.Show) (*Engine, *Catalog, *Ledger) {
	t.Helper()
	st := &memStore{shows: shows}
	catalog, err := NewCatalog(st, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ledger, err := NewLedger(st)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return NewEngine(catalog, ledger, st), catalog, ledger
}
