// Package main is the entry point for the statcmp CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/statcmp/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
