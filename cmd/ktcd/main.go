package main

import (
	"os"

	"github.com/rustyeddy/ktcd/cmd/ktcd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
