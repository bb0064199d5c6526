// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging configures the process-wide logger. All log output goes
// to stderr so stdout stays reserved for the generated password.
package logging

import (
	"os"

	log "github.com/charmbracelet/log"
)

// Init configures the default logger: stderr, no timestamps, WARN level
// unless verbose is requested. Call once at startup before any logging.
func Init(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
