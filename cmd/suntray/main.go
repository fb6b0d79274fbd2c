// Package main is the entry point for the suntray CLI.
package main

import (
	"os"

	"github.com/suntray-io/suntray/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
