package main

import (
	"os"

	"notelock/cmd/notelock/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
