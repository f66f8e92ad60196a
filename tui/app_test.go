package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"movie-booking-cli/service"
	"movie-booking-cli/store"
)

func newTestApp(t *testing.T) appModel {
	t.Helper()
	st := store.New(t.TempDir())
	catalog, err := service.NewCatalog(st, store.SeedShows())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	ledger, err := service.NewLedger(st)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	engine := service.NewEngine(catalog, ledger, st)
	return New(catalog, ledger, engine).(appModel)
}

func pressEnter(m appModel) (appModel, bool) {
	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	return next, handled
}

func pressKey(m appModel, key string) (appModel, bool) {
	next, _, handled := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next, handled
}

func TestMenu_EnterOpensShowList(t *testing.T) {
	m := newTestApp(t)
	if m.state != stateMenu {
		t.Fatalf("expected menu state, got %d", m.state)
	}

	m, handled := pressEnter(m)
	if !handled {
		t.Fatal("expected enter to be handled")
	}
	if m.state != stateListShows {
		t.Fatalf("expected show listing, got state %d", m.state)
	}
	view := m.View()
	if !strings.Contains(view, "The Great Adventure") || !strings.Contains(view, "Romance in Python") {
		t.Fatalf("expected seeded shows in the listing, got:\n%s", view)
	}
}

func TestBookingFlow_PlanConfirmCommit(t *testing.T) {
	m := newTestApp(t)
	show, ok := m.catalog.Find("S1")
	if !ok {
		t.Fatal("expected seeded show S1")
	}

	m.state = stateEnterSeats
	m.show = show
	m.seatInput.SetValue("A1,A2")

	m, handled := pressEnter(m)
	if !handled || m.state != stateConfirmBooking {
		t.Fatalf("expected confirmation state, got %d", m.state)
	}
	if m.plan == nil || len(m.plan.Seats) != 2 {
		t.Fatalf("expected a 2-seat plan, got %+v", m.plan)
	}
	if !strings.Contains(m.View(), "Total: 300.00") {
		t.Fatalf("expected total in confirmation view, got:\n%s", m.View())
	}

	m, _ = pressKey(m, "y")
	if m.state != stateResult {
		t.Fatalf("expected result state, got %d", m.state)
	}
	if got := show.AvailableCount(); got != 38 {
		t.Fatalf("expected 38 seats left, got %d", got)
	}
	if len(m.ledger.Bookings()) != 1 {
		t.Fatalf("expected one booking, got %d", len(m.ledger.Bookings()))
	}
}

func TestBookingFlow_DeclineLeavesGrid(t *testing.T) {
	m := newTestApp(t)
	show, _ := m.catalog.Find("S1")

	m.state = stateEnterSeats
	m.show = show
	m.seatInput.SetValue("B1")
	m, _ = pressEnter(m)
	m, _ = pressKey(m, "n")

	if m.state != stateResult {
		t.Fatalf("expected result state, got %d", m.state)
	}
	if got := show.AvailableCount(); got != 40 {
		t.Fatalf("expected grid unchanged, got %d seats", got)
	}
	if len(m.ledger.Bookings()) != 0 {
		t.Fatal("expected no bookings after declining")
	}
}

func TestCancelFlow_UnknownID(t *testing.T) {
	m := newTestApp(t)
	m.state = stateEnterBookingID
	m.cancelInput.SetValue("NOPE1234")

	m, _ = pressEnter(m)
	if m.state != stateError {
		t.Fatalf("expected error state, got %d", m.state)
	}
	if !strings.Contains(m.View(), "booking not found") {
		t.Fatalf("expected not-found message, got:\n%s", m.View())
	}

	// esc returns to the id prompt.
	m, _, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateEnterBookingID {
		t.Fatalf("expected to return to the id prompt, got %d", m.state)
	}
}

func TestRenderSeatMap(t *testing.T) {
	m := newTestApp(t)
	show, _ := m.catalog.Find("S1")
	if err := show.Seats.SetOccupied(0, 0, true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	out := renderSeatMap(show)
	if !strings.Contains(out, "SCREEN") {
		t.Fatalf("expected screen bar, got:\n%s", out)
	}
	if !strings.Contains(out, "Available: 39") {
		t.Fatalf("expected availability count, got:\n%s", out)
	}
	if !strings.Contains(out, "XX") {
		t.Fatalf("expected a booked cell marker, got:\n%s", out)
	}
}
