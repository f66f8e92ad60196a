package model

import (
	"errors"
	"testing"
)

func TestSeatLabel_RoundTrip(t *testing.T) {
	for row := 0; row < 10; row++ {
		for col := 0; col < 12; col++ {
			label := SeatLabel(row, col)
			gotRow, gotCol, err := ParseSeatLabel(label)
			if err != nil {
				t.Fatalf("expected %q to parse, got %v", label, err)
			}
			if gotRow != row || gotCol != col {
				t.Fatalf("expected %q to round-trip to (%d,%d), got (%d,%d)", label, row, col, gotRow, gotCol)
			}
		}
	}
}

func TestParseSeatLabel_CaseAndWhitespace(t *testing.T) {
	row, col, err := ParseSeatLabel("  b12 ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if row != 1 || col != 11 {
		t.Fatalf("expected (1,11), got (%d,%d)", row, col)
	}
}

func TestParseSeatLabel_Malformed(t *testing.T) {
	for _, label := range []string{"", " ", "A", "1A", "A0", "A-1", "AX", "9", "!3"} {
		if _, _, err := ParseSeatLabel(label); !errors.Is(err, ErrInvalidLabel) {
			t.Fatalf("expected ErrInvalidLabel for %q, got %v", label, err)
		}
	}
}

func TestSeatGrid_AvailabilityAndMutation(t *testing.T) {
	g := NewSeatGrid(5, 8)
	if got := g.AvailableCount(); got != 40 {
		t.Fatalf("expected 40 available seats, got %d", got)
	}

	if err := g.SetOccupied(2, 3, true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	free, err := g.Available(2, 3)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if free {
		t.Fatal("expected seat (2,3) to be booked")
	}
	if got := g.AvailableCount(); got != 39 {
		t.Fatalf("expected 39 available seats, got %d", got)
	}

	if err := g.SetOccupied(2, 3, false); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := g.AvailableCount(); got != 40 {
		t.Fatalf("expected 40 available seats after freeing, got %d", got)
	}
}

func TestSeatGrid_OutOfRange(t *testing.T) {
	g := NewSeatGrid(5, 8)
	if _, err := g.Available(5, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := g.Available(0, 8); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := g.SetOccupied(-1, 0, true); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if g.AvailableCount() != 40 {
		t.Fatal("expected failed mutations to leave the grid unchanged")
	}
}
