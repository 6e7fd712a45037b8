package main

import (
	"os"

	"github.com/dashfolio-dev/dashfolio/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
