// Package main provides the entry point for the synlink CLI tool.
package main

import (
	"context"
	"os"

	"github.com/karyolab/synlink/cmd/synlink/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel the run on SIGINT/SIGTERM so partial output is not left
	// behind silently.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
