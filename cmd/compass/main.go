package main

import (
	"os"

	"github.com/csecompass/catalog/cmd/compass/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are printed by the printer package before reaching here.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
