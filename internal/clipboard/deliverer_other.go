// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

//go:build !linux

package clipboard

import "io"

// HolderCommand is the hidden subcommand name. It exists on every
// platform so the CLI wiring stays uniform, but nothing spawns it here.
const HolderCommand = "holder"

// New returns the deliverer for platforms whose clipboard natively
// retains content after the owning process exits: store and return, no
// detached holder.
func New(verbose bool) Deliverer {
	return Direct{}
}

// Hold stores the password and blocks until the clipboard is superseded.
// Only ever reached when the hidden holder command is invoked by hand;
// regular copy-mode delivery on this platform is Direct.
func Hold(r io.Reader) error {
	return holdClipboard(r)
}
