package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Seat cell values as persisted: 0 is free, 1 is taken.
const (
	SeatAvailable = 0
	SeatBooked    = 1
)

var (
	ErrInvalidLabel = errors.New("invalid seat label")
	ErrOutOfRange   = errors.New("seat out of range")
)

// SeatGrid is the occupancy matrix for one show, row-major, stored as
// 0/1 cells so it marshals straight into the persisted format.
type SeatGrid [][]int

// NewSeatGrid returns an all-available grid of the given dimensions.
func NewSeatGrid(rows, cols int) SeatGrid {
	grid := make(SeatGrid, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
	}
	return grid
}

func (g SeatGrid) Rows() int {
	return len(g)
}

func (g SeatGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InRange reports whether (row, col) addresses a cell of the grid.
func (g SeatGrid) InRange(row, col int) bool {
	return row >= 0 && row < g.Rows() && col >= 0 && col < g.Cols()
}

// Available reports whether the seat at (row, col) is free.
func (g SeatGrid) Available(row, col int) (bool, error) {
	if !g.InRange(row, col) {
		return false, fmt.Errorf("%w: row %d, col %d", ErrOutOfRange, row, col)
	}
	return g[row][col] == SeatAvailable, nil
}

// SetOccupied marks a single cell booked or available.
func (g SeatGrid) SetOccupied(row, col int, occupied bool) error {
	if !g.InRange(row, col) {
		return fmt.Errorf("%w: row %d, col %d", ErrOutOfRange, row, col)
	}
	if occupied {
		g[row][col] = SeatBooked
	} else {
		g[row][col] = SeatAvailable
	}
	return nil
}

// AvailableCount returns the number of free seats in the grid.
func (g SeatGrid) AvailableCount() int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == SeatAvailable {
				count++
			}
		}
	}
	return count
}

// SeatLabel converts grid coordinates to the human label: row 0 -> "A",
// column 0 -> "1", so (0, 0) is "A1".
func SeatLabel(row, col int) string {
	return fmt.Sprintf("%c%d", 'A'+row, col+1)
}

// ParseSeatLabel parses a label like "A1" or "b12" into grid
// coordinates. The row letter is case-insensitive and the column part
// must be a positive integer. The returned coordinates are not checked
// against any particular grid; callers range-check with InRange.
func ParseSeatLabel(label string) (row, col int, err error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	rowChar := s[0]
	if rowChar < 'A' || rowChar > 'Z' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	num, convErr := strconv.Atoi(s[1:])
	if convErr != nil || num < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return int(rowChar - 'A'), num - 1, nil
}
