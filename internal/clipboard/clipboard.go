// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package clipboard delivers a generated password to the system clipboard.
//
// On platforms whose clipboard retains content after the owning process
// exits (windows, darwin) the password is stored directly. On linux the
// clipboard dies with its owner, so delivery spawns a detached holder
// process that owns the clipboard until its contents are replaced; see
// deliverer_linux.go.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"time"

	atotto "github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"

	"github.com/toeirei/genpass/internal/security"
)

var (
	// ErrInit means the clipboard subsystem is unavailable.
	ErrInit = errors.New("unable to initialize clipboard")
	// ErrStore means the clipboard rejected the write.
	ErrStore = errors.New("unable to store the password to the clipboard")
	// ErrSpawn means the detached holder process could not be started.
	ErrSpawn = errors.New("unable to spawn the clipboard holder process")
	// ErrSessionCreate means the holder could not detach into its own
	// session (see `man 2 setsid`).
	ErrSessionCreate = errors.New("unable to create a session")
)

// Deliverer places a generated password into the system clipboard. Any
// failure is terminal for the run; implementations never retry.
type Deliverer interface {
	Deliver(password security.Secret) error
}

// Indirection over the atotto clipboard so tests run without a display
// server. Production code never reassigns these.
var (
	writeAll     = atotto.WriteAll
	readAll      = atotto.ReadAll
	unsupported  = func() bool { return atotto.Unsupported }
	pollInterval = 500 * time.Millisecond
)

// Direct stores the password and returns immediately. Used as-is on
// platforms with a persistent clipboard, and by the holder process on
// linux.
type Direct struct{}

// Deliver implements Deliverer.
func (Direct) Deliver(password security.Secret) error {
	return store(password)
}

// store writes the password to the clipboard exactly once, with no
// trailing newline.
func store(password security.Secret) error {
	if unsupported() {
		return fmt.Errorf("%w: no clipboard mechanism available on this platform", ErrInit)
	}
	return password.Use(func(b []byte) error {
		if err := writeAll(string(b)); err != nil {
			return fmt.Errorf("%w: %v", ErrStore, err)
		}
		return nil
	})
}

// holdClipboard reads the password from r, stores it, and blocks until the
// clipboard reports different content. The wait is unbounded: no timeout,
// no cancellation. It ends only when another process supersedes us.
func holdClipboard(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading password from holder pipe: %w", err)
	}
	password := security.Secret(b)
	if err := store(password); err != nil {
		return err
	}
	waitUntilSuperseded(string(b))
	log.Debug("lost clipboard ownership; terminating")
	return nil
}

// waitUntilSuperseded polls the clipboard until its contents differ from
// password. Read errors are treated as "not yet superseded"; a transiently
// unreadable clipboard must not end the hold early.
func waitUntilSuperseded(password string) {
	for {
		current, err := readAll()
		if err == nil && current != password {
			return
		}
		time.Sleep(pollInterval)
	}
}
