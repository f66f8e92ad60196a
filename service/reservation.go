package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"movie-booking-cli/model"
)

var (
	// ErrEmptyRequest means the request contained no seat labels at
	// all after trimming blanks.
	ErrEmptyRequest = errors.New("no seats requested")
	// ErrNoValidSeats means every requested seat was skipped.
	ErrNoValidSeats = errors.New("no valid seats to book")
	// ErrNotFound means no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrNotConfirmed means the confirmation collaborator declined.
	ErrNotConfirmed = errors.New("booking not confirmed")
	// ErrStalePlan means a planned seat was taken between Plan and
	// Commit. Nothing is mutated in that case.
	ErrStalePlan = errors.New("a planned seat is no longer available")
)

// Reasons attached to per-seat warnings. Individual bad seats are
// skipped and reported, never fatal for the request.
const (
	SkipInvalidLabel  = "invalid label"
	SkipOutOfRange    = "out of range"
	SkipAlreadyBooked = "already booked"
	SkipDuplicate     = "already in this request"
)

// SeatWarning reports one requested seat that was skipped and why.
type SeatWarning struct {
	Label  string
	Reason string
}

func (w SeatWarning) String() string {
	return fmt.Sprintf("seat %s skipped: %s", w.Label, w.Reason)
}

// SeatRef is a validated seat: grid coordinates plus the canonical
// label they render to.
type SeatRef struct {
	Row   int
	Col   int
	Label string
}

// Plan is the validated, not-yet-committed outcome of a booking
// request: the seats that will be taken, the seats that were skipped,
// and the price for the valid ones.
type Plan struct {
	Show     *model.Show
	Seats    []SeatRef
	Warnings []SeatWarning
	Total    float64
}

// ConfirmFunc decides whether a plan goes ahead. The TUI answers it
// from its confirmation screen; the plain subcommands from a prompt.
type ConfirmFunc func(*Plan) bool

// Engine validates seat requests against a show's grid, commits them
// atomically and records the resulting bookings in the ledger.
type Engine struct {
	catalog *Catalog
	ledger  *Ledger
	store   Persister
}

// NewEngine wires the reservation engine to its catalog, ledger and
// storage.
func NewEngine(catalog *Catalog, ledger *Ledger, store Persister) *Engine {
	return &Engine{catalog: catalog, ledger: ledger, store: store}
}

// Plan validates the requested labels against the show's current grid.
// Each label is checked independently: malformed labels, out-of-range
// coordinates, already-booked seats and repeats within the same
// request are skipped with a warning. The grid is not touched.
func (e *Engine) Plan(show *model.Show, labels []string) (*Plan, error) {
	var requested []string
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			requested = append(requested, l)
		}
	}
	if len(requested) == 0 {
		return nil, ErrEmptyRequest
	}

	plan := &Plan{Show: show}
	claimed := make(map[[2]int]bool)
	for _, label := range requested {
		row, col, err := model.ParseSeatLabel(label)
		if err != nil {
			plan.Warnings = append(plan.Warnings, SeatWarning{label, SkipInvalidLabel})
			continue
		}
		free, err := show.Seats.Available(row, col)
		if err != nil {
			plan.Warnings = append(plan.Warnings, SeatWarning{label, SkipOutOfRange})
			continue
		}
		if !free {
			plan.Warnings = append(plan.Warnings, SeatWarning{label, SkipAlreadyBooked})
			continue
		}
		if claimed[[2]int{row, col}] {
			plan.Warnings = append(plan.Warnings, SeatWarning{label, SkipDuplicate})
			continue
		}
		claimed[[2]int{row, col}] = true
		plan.Seats = append(plan.Seats, SeatRef{Row: row, Col: col, Label: model.SeatLabel(row, col)})
	}

	if len(plan.Seats) == 0 {
		return nil, fmt.Errorf("%w (%d skipped)", ErrNoValidSeats, len(plan.Warnings))
	}
	plan.Total = float64(len(plan.Seats)) * show.Price
	return plan, nil
}

// Commit takes every planned seat and issues the booking. Either all
// planned seats are marked or none: the grid is re-checked first and a
// stale plan fails before any mutation. A persistence failure is
// returned alongside the booking; the in-memory state stands.
func (e *Engine) Commit(plan *Plan) (*model.Booking, error) {
	for _, seat := range plan.Seats {
		free, err := plan.Show.Seats.Available(seat.Row, seat.Col)
		if err != nil || !free {
			return nil, fmt.Errorf("%w: %s", ErrStalePlan, seat.Label)
		}
	}
	for _, seat := range plan.Seats {
		// Cannot fail: every seat was range-checked above.
		_ = plan.Show.Seats.SetOccupied(seat.Row, seat.Col, true)
	}

	labels := make([]string, len(plan.Seats))
	for i, seat := range plan.Seats {
		labels[i] = seat.Label
	}
	booking := &model.Booking{
		BookingID: newBookingID(),
		ShowID:    plan.Show.ShowID,
		Title:     plan.Show.Title,
		Time:      plan.Show.Time,
		Seats:     labels,
		Amount:    plan.Total,
		CreatedAt: time.Now(),
	}
	e.ledger.add(booking)

	if err := e.persist(); err != nil {
		return booking, err
	}
	return booking, nil
}

// Book plans the request, asks confirm, and commits. A nil confirm
// commits unconditionally.
func (e *Engine) Book(show *model.Show, labels []string, confirm ConfirmFunc) (*model.Booking, error) {
	plan, err := e.Plan(show, labels)
	if err != nil {
		return nil, err
	}
	if confirm != nil && !confirm(plan) {
		return nil, ErrNotConfirmed
	}
	return e.Commit(plan)
}

// Cancel removes the booking with the given id and frees its seats.
// Seats are freed defensively: each label is reparsed against the
// show's current grid, and a show that no longer exists or has shrunk
// just means those seats are not freed. The booking is removed either
// way.
func (e *Engine) Cancel(id string) (*model.Booking, error) {
	booking, ok := e.ledger.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, strings.TrimSpace(id))
	}

	if show, ok := e.catalog.Find(booking.ShowID); ok {
		for _, label := range booking.Seats {
			row, col, err := model.ParseSeatLabel(label)
			if err != nil || !show.Seats.InRange(row, col) {
				continue
			}
			_ = show.Seats.SetOccupied(row, col, false)
		}
	}

	e.ledger.remove(booking)
	if err := e.persist(); err != nil {
		return booking, err
	}
	return booking, nil
}

func (e *Engine) persist() error {
	if err := e.store.SaveShows(e.catalog.Shows()); err != nil {
		return fmt.Errorf("save shows: %w", err)
	}
	return e.ledger.save()
}

func newBookingID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
