// Package main provides the solstyle CLI.
package main

import (
	"os"

	"github.com/solstack-labs/solstyle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
