package model

import (
	"strings"
	"time"
)

// Booking is a confirmed reservation of one or more seats on one show.
// Title and Time are snapshots taken at booking time; the show itself
// is referenced only by id and may have changed (or gone) since.
type Booking struct {
	BookingID string    `json:"booking_id"`
	ShowID    string    `json:"show_id"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Seats     []string  `json:"seats"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchesID reports whether id refers to this booking. Booking ids
// compare case-insensitively.
func (b *Booking) MatchesID(id string) bool {
	return strings.EqualFold(b.BookingID, strings.TrimSpace(id))
}
