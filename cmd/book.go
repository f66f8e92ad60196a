package cmd

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"movie-booking-cli/service"
)

var (
	bookShowID string
	bookSeats  string
	bookYes    bool
)

var bookCmd = &cobra.Command{
	Use:   "book --show S1 --seats A1,A2",
	Short: "Book seats on a show",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, _, engine, err := loadServices()
		if err != nil {
			return err
		}
		show, ok := catalog.Find(bookShowID)
		if !ok {
			return fmt.Errorf("unknown show id: %s", bookShowID)
		}

		plan, err := engine.Plan(show, strings.Split(bookSeats, ","))
		if err != nil {
			return err
		}
		for _, w := range plan.Warnings {
			fmt.Println(w)
		}

		labels := make([]string, len(plan.Seats))
		for i, seat := range plan.Seats {
			labels[i] = seat.Label
		}
		fmt.Printf("Booking %d seat(s) for '%s' at %s. Total = %.2f\n",
			len(plan.Seats), show.Title, show.Time, plan.Total)

		if !bookYes && !confirmPrompt(fmt.Sprintf("Confirm booking of %s", strings.Join(labels, ", "))) {
			return service.ErrNotConfirmed
		}

		booking, err := engine.Commit(plan)
		if booking == nil {
			return err
		}
		if err != nil {
			fmt.Printf("Warning: state not saved: %v\n", err)
		}
		fmt.Printf("Booking successful! Booking ID: %s\n", booking.BookingID)
		fmt.Printf("Seats: %s\n", strings.Join(booking.Seats, ", "))
		return nil
	},
}

// confirmPrompt asks a y/N question; any answer but yes (including an
// aborted prompt) declines.
func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	return err == nil
}

func init() {
	bookCmd.Flags().StringVar(&bookShowID, "show", "", "show id (e.g. S1)")
	bookCmd.Flags().StringVar(&bookSeats, "seats", "", "seat labels separated by commas (e.g. A1,A2)")
	bookCmd.Flags().BoolVar(&bookYes, "yes", false, "skip the confirmation prompt")
	_ = bookCmd.MarkFlagRequired("show")
	_ = bookCmd.MarkFlagRequired("seats")
}
