package main

import (
	"os"

	"github.com/8ui/restomenu-core-sub000/internal/adapters/driving/cli"
)

func main() {
	// Cobra already printed the error; just signal the failure.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
