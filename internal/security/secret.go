// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security provides a redacting container for generated passwords.
package security

import (
	"encoding/json"
	"fmt"
	"io"
)

// Secret holds a generated password so that accidental formatting or JSON
// marshaling never reveals it. The password only leaves the Secret through
// Use or Bytes, at explicit call sites (stdout print, clipboard store).
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return "[SECRET]" }

// Format implements fmt.Formatter so `%v`, `%s`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	if _, err := io.WriteString(f, "[SECRET]"); err != nil {
		_ = err // formatting a secret into logs must never fail loudly
	}
}

// MarshalJSON redacts secrets in JSON marshaling.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal("[SECRET]") }

// MarshalText redacts secrets for text encoding.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[SECRET]"), nil }

// Bytes returns a copy of the underlying bytes. Callers are responsible
// for zeroing sensitive copies when done.
func (s Secret) Bytes() []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// Use executes fn with the underlying bytes (not a copy). Prefer this over
// Bytes when the caller does not need to retain the value.
func (s Secret) Use(fn func([]byte) error) error {
	return fn([]byte(s))
}

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}

// FromString wraps a string in a Secret.
func FromString(in string) Secret { return Secret([]byte(in)) }
