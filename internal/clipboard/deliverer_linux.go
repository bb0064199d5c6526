// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build linux

package clipboard

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	log "github.com/charmbracelet/log"

	"github.com/toeirei/genpass/internal/security"
)

// HolderCommand is the hidden subcommand the holder process is started
// with. The CLI registers it and routes it to Hold.
const HolderCommand = "holder"

// New returns the linux deliverer. X11/Wayland selections die with the
// owning process, so delivery re-execs the current binary into a detached
// holder that keeps the password available until superseded. Go cannot
// fork(2) directly; a detached re-exec plus Setsid in the child has the
// same lifecycle.
func New(verbose bool) Deliverer {
	return holderSpawner{verbose: verbose}
}

type holderSpawner struct {
	verbose bool
}

// Deliver starts the holder process and hands it the password over a
// stdin pipe (never via argv, which is world-readable in /proc). It
// returns as soon as the holder is running; the caller's process exits 0
// while the holder blocks until the clipboard is replaced.
func (h holderSpawner) Deliver(password security.Secret) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	args := []string{HolderCommand}
	if h.verbose {
		args = append(args, "--verbose")
	}
	cmd := exec.Command(exe, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	writeErr := password.Use(func(b []byte) error {
		_, err := stdin.Write(b)
		return err
	})
	if closeErr := stdin.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("%w: passing password to holder: %v", ErrSpawn, writeErr)
	}

	log.Debugf("process daemonized and now running with pid %d", cmd.Process.Pid)

	// The holder is autonomous from here on; never wait for it.
	return cmd.Process.Release()
}

// Hold runs inside the detached holder process. It creates a new session
// so the holder survives the parent's shell returning control, then
// stores the password and blocks until the clipboard is superseded. A
// session failure aborts before the password is ever stored.
func Hold(r io.Reader) error {
	if _, err := syscall.Setsid(); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionCreate, err)
	}
	log.Debug("session created")
	return holdClipboard(r)
}
