package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movie-booking-cli/model"
)

var showsCmd = &cobra.Command{
	Use:   "shows",
	Short: "List all shows",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, _, err := loadServices()
		if err != nil {
			return err
		}
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"ID", "Title", "Time", "Price", "Seats left"})
		for _, s := range catalog.Shows() {
			t.AppendRow(table.Row{s.ShowID, s.Title, s.Time, fmt.Sprintf("%.2f", s.Price), s.AvailableCount()})
		}
		t.Render()
		return nil
	},
}

var seatmapCmd = &cobra.Command{
	Use:   "seatmap <show-id>",
	Short: "Print the seat map of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, _, err := loadServices()
		if err != nil {
			return err
		}
		show, ok := catalog.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown show id: %s", args[0])
		}
		fmt.Printf("Seat map for %s - %s:\n", show.Title, show.Time)
		fmt.Print(plainSeatMap(show))
		return nil
	},
}

// plainSeatMap renders the O/X availability grid with a column header
// and row letters.
func plainSeatMap(show *model.Show) string {
	grid := show.Seats
	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < grid.Cols(); c++ {
		b.WriteString(fmt.Sprintf("%2d ", c+1))
	}
	b.WriteString("\n")
	for r := 0; r < grid.Rows(); r++ {
		b.WriteString(fmt.Sprintf("%c  ", 'A'+r))
		for c := 0; c < grid.Cols(); c++ {
			if free, _ := grid.Available(r, c); free {
				b.WriteString(" O ")
			} else {
				b.WriteString(" X ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("O = available, X = booked\n")
	return b.String()
}
