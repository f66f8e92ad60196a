package main

import "movie-booking-cli/cmd"

func main() {
	cmd.Execute()
}
