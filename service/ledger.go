package service

import (
	"fmt"

	"movie-booking-cli/model"
)

// Ledger owns the set of issued bookings in insertion order. Like the
// catalog it is single-goroutine state.
type Ledger struct {
	store    Persister
	bookings []*model.Booking
}

// NewLedger loads the ledger from storage.
func NewLedger(store Persister) (*Ledger, error) {
	bookings, err := store.LoadBookings()
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return &Ledger{store: store, bookings: bookings}, nil
}

// Find returns the booking with the given id. Ids match
// case-insensitively.
func (l *Ledger) Find(id string) (*model.Booking, bool) {
	for _, b := range l.bookings {
		if b.MatchesID(id) {
			return b, true
		}
	}
	return nil, false
}

// Bookings returns all bookings in insertion order. The slice is
// shared; callers must not modify it.
func (l *Ledger) Bookings() []*model.Booking {
	return l.bookings
}

func (l *Ledger) add(b *model.Booking) {
	l.bookings = append(l.bookings, b)
}

func (l *Ledger) remove(b *model.Booking) {
	for i, existing := range l.bookings {
		if existing == b {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
			return
		}
	}
}

func (l *Ledger) save() error {
	if err := l.store.SaveBookings(l.bookings); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}
