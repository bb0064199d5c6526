// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package generator builds the final symbol universe from the configuration
// record and samples passwords from it.
package generator

import (
	"fmt"
	"io"

	log "github.com/charmbracelet/log"

	"github.com/toeirei/genpass/internal/config"
	"github.com/toeirei/genpass/internal/security"
	"github.com/toeirei/genpass/internal/symbols"
)

// Request is the validated input for one generation run: the final symbol
// universe, the requested length in unicode scalar values, and the
// delivery mode. Built once per run, not mutated afterward.
type Request struct {
	Symbols symbols.Set
	Length  int
	Copy    bool
}

// NewRequest builds the symbol universe from cfg and bundles it with the
// requested length and delivery mode.
func NewRequest(cfg config.Config) (Request, error) {
	universe, err := BuildUniverse(cfg)
	if err != nil {
		return Request{}, err
	}
	return Request{Symbols: universe, Length: cfg.Length, Copy: cfg.Copy}, nil
}

// BuildUniverse composes the final symbol set. Base categories merge in
// fixed order (upper, lower, digits, special), then allow-sets in input
// order. Deny-sets apply strictly after every allow-set, so deny always
// wins regardless of flag order on the command line.
func BuildUniverse(cfg config.Config) (symbols.Set, error) {
	var universe *symbols.Set

	merge := func(s symbols.Set) {
		log.Debugf("add symbols %s", s)
		if universe == nil {
			universe = &s
			return
		}
		merged := universe.Union(s)
		universe = &merged
	}

	// --no-latin is shorthand for disabling both latin sub-categories.
	if !cfg.NoLatin && !cfg.NoLatinUpper {
		merge(symbols.LatinUpper())
	}
	if !cfg.NoLatin && !cfg.NoLatinLower {
		merge(symbols.LatinLower())
	}
	if !cfg.NoDigits {
		merge(symbols.Digits())
	}
	if !cfg.NoSpecial {
		merge(symbols.Special())
	}

	for _, allow := range cfg.Allowed {
		s, err := symbols.Parse(allow)
		if err != nil {
			return symbols.Set{}, fmt.Errorf("allow set %q: %w", allow, err)
		}
		merge(s)
	}

	if universe == nil {
		return symbols.Set{}, fmt.Errorf("no symbols are allowed to generate a password with: %w", symbols.ErrEmptySet)
	}

	for _, deny := range cfg.Disallowed {
		s, err := symbols.Parse(deny)
		if err != nil {
			return symbols.Set{}, fmt.Errorf("deny set %q: %w", deny, err)
		}
		log.Debugf("remove symbols %s", s)
		remaining, err := universe.Difference(s)
		if err != nil {
			return symbols.Set{}, fmt.Errorf("no symbols left after removing %q: %w", deny, err)
		}
		universe = &remaining
	}

	log.Debugf("symbols to use: %s", universe)

	if universe.Len() == 1 {
		log.Warn("there is only one symbol available for password generation")
	}

	return *universe, nil
}

// Generate samples a password of exactly r.Length runes, each drawn
// independently and uniformly from the universe. The entropy source must
// be cryptographically strong for production use (crypto/rand.Reader); a
// read failure aborts immediately, there are no retries.
func (r Request) Generate(entropy io.Reader) (security.Secret, error) {
	if r.Length < 1 {
		return nil, fmt.Errorf("password length must be positive, got %d", r.Length)
	}
	out := make([]rune, r.Length)
	for i := range out {
		c, err := r.Symbols.Pick(entropy)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return security.FromString(string(out)), nil
}
