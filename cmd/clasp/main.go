package main

import (
	"os"

	"clasp/cmd/clasp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
