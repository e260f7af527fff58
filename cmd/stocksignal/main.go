package main

import (
	"os"

	"stocksignal/cmd/stocksignal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
