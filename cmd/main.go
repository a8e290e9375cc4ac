// Package main is the entry point for the sensor-cleaner CLI.
package main

import (
	"os"

	"sensor-cleaner/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
