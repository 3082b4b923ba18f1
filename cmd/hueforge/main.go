// Hueforge - colour palette generation and accessibility checking
//
// Hueforge generates harmonious colour palettes, scores them against the
// WCAG contrast guidelines and exports them as CSS, JSON or PNG swatches.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/hueforge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
