package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movie-booking-cli/service"
)

var cancelYes bool

var cancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking and free its seats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ledger, engine, err := loadServices()
		if err != nil {
			return err
		}
		booking, ok := ledger.Find(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", service.ErrNotFound, args[0])
		}

		fmt.Printf("Show: %s at %s\n", booking.Title, booking.Time)
		fmt.Printf("Seats: %s\n", strings.Join(booking.Seats, ", "))
		if !cancelYes && !confirmPrompt("Confirm cancel") {
			fmt.Println("Cancellation aborted.")
			return nil
		}

		if _, err := engine.Cancel(booking.BookingID); err != nil {
			fmt.Printf("Warning: state not saved: %v\n", err)
		}
		fmt.Println("Booking cancelled and seats freed.")
		return nil
	},
}

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List all bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ledger, _, err := loadServices()
		if err != nil {
			return err
		}
		bookings := ledger.Bookings()
		if len(bookings) == 0 {
			fmt.Println("No bookings found.")
			return nil
		}
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"ID", "Show", "Time", "Seats", "Amount", "Created"})
		for _, b := range bookings {
			t.AppendRow(table.Row{
				b.BookingID, b.Title, b.Time,
				strings.Join(b.Seats, ", "),
				fmt.Sprintf("%.2f", b.Amount),
				b.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	cancelCmd.Flags().BoolVar(&cancelYes, "yes", false, "skip the confirmation prompt")
}
