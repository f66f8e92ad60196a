package cmd

import (
	"strings"
	"testing"

	"movie-booking-cli/model"
)

func TestPlainSeatMap(t *testing.T) {
	show := &model.Show{
		ShowID: "S1",
		Title:  "Test",
		Rows:   2,
		Cols:   3,
		Seats:  model.NewSeatGrid(2, 3),
	}
	if err := show.Seats.SetOccupied(1, 2, true); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	out := plainSeatMap(show)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, 2 rows and a legend, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "A") || !strings.HasPrefix(lines[2], "B") {
		t.Fatalf("expected row letters, got:\n%s", out)
	}
	if strings.Count(lines[2], "X") != 1 || strings.Count(lines[1], "X") != 0 {
		t.Fatalf("expected exactly one booked marker in row B, got:\n%s", out)
	}
	if !strings.Contains(lines[3], "O = available") {
		t.Fatalf("expected legend, got:\n%s", out)
	}
}
