package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"movie-booking-cli/model"
)

const (
	showsFile    = "shows.json"
	bookingsFile = "bookings.json"
)

// Store persists the show catalog and booking ledger as JSON files in
// a single directory. A missing file reads as an empty collection.
type Store struct {
	dir string
}

// DefaultDir returns the data directory: $MOVIE_BOOKING_DATA when set,
// otherwise a movie-booking-cli folder under the user config dir.
func DefaultDir() (string, error) {
	if dir := os.Getenv("MOVIE_BOOKING_DATA"); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "movie-booking-cli"), nil
}

// New returns a store rooted at dir. The directory is created lazily
// on first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// LoadShows reads the show catalog. Absent file yields (nil, nil).
func (s *Store) LoadShows() ([]*model.Show, error) {
	return loadJSON[[]*model.Show](filepath.Join(s.dir, showsFile))
}

// SaveShows writes the full show catalog.
func (s *Store) SaveShows(shows []*model.Show) error {
	return saveJSON(filepath.Join(s.dir, showsFile), shows)
}

// LoadBookings reads the booking ledger. Absent file yields (nil, nil).
func (s *Store) LoadBookings() ([]*model.Booking, error) {
	return loadJSON[[]*model.Booking](filepath.Join(s.dir, bookingsFile))
}

// SaveBookings writes the full booking ledger.
func (s *Store) SaveBookings(bookings []*model.Booking) error {
	return saveJSON(filepath.Join(s.dir, bookingsFile), bookings)
}

// SeedShows returns the demo screenings installed on first run, when
// no shows file exists yet.
func SeedShows() []*model.Show {
	return []*model.Show{
		{
			ShowID: "S1",
			Title:  "The Great Adventure",
			Time:   "2025-11-26 18:00",
			Price:  150.0,
			Rows:   5,
			Cols:   8,
			Seats:  model.NewSeatGrid(5, 8),
		},
		{
			ShowID: "S2",
			Title:  "Romance in Python",
			Time:   "2025-11-26 20:30",
			Price:  180.0,
			Rows:   6,
			Cols:   7,
			Seats:  model.NewSeatGrid(6, 7),
		},
	}
}

func loadJSON[T any](path string) (T, error) {
	var out T
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

func saveJSON[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
