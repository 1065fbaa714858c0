// dynatint - Background-aware colour resolution for themed widgets
//
// dynatint resolves widget colours from a theme and keeps them legible
// against the background they are drawn on.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/dynatint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
