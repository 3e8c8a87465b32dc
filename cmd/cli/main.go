package main

import (
	"os"

	"github.com/subtally/subtally-api/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
