package main

import (
	"os"

	"github.com/fieldhq/brevet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
