package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"movie-booking-cli/service"
	"movie-booking-cli/store"
	"movie-booking-cli/tui"
)

var (
	version = "dev"
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "movie-booking-cli",
	Short: "Movie ticket booking from the terminal",
	Long:  `Browse shows, view seat maps, book and cancel seats - all from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, ledger, engine, err := loadServices()
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(catalog, ledger, engine), tea.WithAltScreen()).Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("movie-booking-cli " + version)
	},
}

// loadServices wires the store, catalog, ledger and engine. The data
// dir comes from --data, $MOVIE_BOOKING_DATA or the user config dir,
// in that order. A first run seeds the demo shows.
func loadServices() (*service.Catalog, *service.Ledger, *service.Engine, error) {
	dir := dataDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("resolve data dir: %w", err)
		}
	}
	st := store.New(dir)
	catalog, err := service.NewCatalog(st, store.SeedShows())
	if err != nil {
		return nil, nil, nil, err
	}
	ledger, err := service.NewLedger(st)
	if err != nil {
		return nil, nil, nil, err
	}
	return catalog, ledger, service.NewEngine(catalog, ledger, st), nil
}

func Execute() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for shows and bookings")
	rootCmd.AddCommand(showsCmd, seatmapCmd, bookingsCmd, bookCmd, cancelCmd, versionCmd)
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
