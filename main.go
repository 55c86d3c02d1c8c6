// Package main is the entry point for parrot.
package main

import (
	"os"

	"github.com/parrot-cli/parrot/cmd"
	"github.com/parrot-cli/parrot/internal/notice"
)

func main() {
	if err := cmd.Execute(); err != nil {
		notice.Stderr(notice.ParseColorMode(os.Getenv("PARROT_COLOR"))).Errorf("%v", err)
		os.Exit(1)
	}
}
