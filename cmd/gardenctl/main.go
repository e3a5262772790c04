package main

import (
	"os"

	"github.com/greenloop/plantcare/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
