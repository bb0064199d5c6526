// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Genpass.
//
// Usage:
//
//	go run . [flags] [length]
//	./genpass [flags] [length]
//
// This generates a password. See --help for options.
package main

import (
	"os"

	log "github.com/charmbracelet/log"

	"github.com/toeirei/genpass/ui/cli"
)

// main is the entrypoint for the Genpass CLI. Any core failure is
// reported as a single line on stderr with a non-zero exit code.
func main() {
	if err := cli.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
