// Package main is the entry point for the material-quantity CLI.
package main

import (
	"os"

	"material-quantity/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
