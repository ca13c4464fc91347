// Package main is the entry point for the service-pricing CLI.
package main

import (
	"os"

	"service-pricing/cmd/cli/cmd"
	"service-pricing/internal/logging"
)

func main() {
	defer logging.Sync()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
