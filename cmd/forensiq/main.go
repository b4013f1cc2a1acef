package main

import (
	"os"

	"github.com/minshik/forensiq/cmd/forensiq/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
