package model

// Show is a scheduled screening with its own seat grid and price.
// Time is kept as the operator-entered "YYYY-MM-DD HH:MM" string; the
// program never computes with it.
type Show struct {
	ShowID string   `json:"show_id"`
	Title  string   `json:"title"`
	Time   string   `json:"time"`
	Price  float64  `json:"price"`
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Seats  SeatGrid `json:"seats"`
}

// AvailableCount returns the number of free seats for the show.
func (s *Show) AvailableCount() int {
	return s.Seats.AvailableCount()
}
