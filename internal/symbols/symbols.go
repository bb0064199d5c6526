// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package symbols implements the character universe a password is drawn
// from. A Set is an immutable, never-empty collection of distinct Unicode
// scalar values with union/difference algebra and uniform sampling. The
// non-emptiness invariant is enforced at every construction boundary, so
// callers holding a Set never need to re-check it.
package symbols

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
)

// ErrEmptySet is returned by any construction that would produce an empty
// symbol set: parsing an empty string, or a difference that removes every
// member.
var ErrEmptySet = errors.New("symbols set can't be empty")

const (
	latinUpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	latinLowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	digitsAlphabet     = "0123456789"
	specialAlphabet    = "`~!@#$%^&*()-_=+[]{}\\|;:'\",<.>/?"
)

// Set is a non-empty set of distinct runes. Members are kept sorted by
// codepoint, so iteration and String output are deterministic. The zero
// value is invalid; always obtain a Set from a constructor or an algebra
// operation.
type Set struct {
	runes []rune // sorted, unique, len > 0
}

// LatinUpper returns the set of the 26 latin uppercase letters.
func LatinUpper() Set { return fromAlphabet(latinUpperAlphabet) }

// LatinLower returns the set of the 26 latin lowercase letters.
func LatinLower() Set { return fromAlphabet(latinLowerAlphabet) }

// Digits returns the set of the 10 decimal digits.
func Digits() Set { return fromAlphabet(digitsAlphabet) }

// Special returns the set of the 32 ASCII punctuation and symbol characters.
func Special() Set { return fromAlphabet(specialAlphabet) }

// fromAlphabet builds a Set from a fixed, known-non-empty alphabet.
func fromAlphabet(alphabet string) Set {
	s, err := Parse(alphabet)
	if err != nil {
		panic(fmt.Sprintf("fixed alphabet must not be empty: %v", err))
	}
	return s
}

// Parse returns the set of distinct runes in text. It fails with
// ErrEmptySet when text is empty; any non-empty text succeeds.
func Parse(text string) (Set, error) {
	if text == "" {
		return Set{}, ErrEmptySet
	}
	rs := []rune(text)
	slices.Sort(rs)
	return Set{runes: slices.Compact(rs)}, nil
}

// Union returns a new set containing the members of both s and other.
// The union of two non-empty sets is non-empty, so Union never fails.
func (s Set) Union(other Set) Set {
	merged := make([]rune, 0, len(s.runes)+len(other.runes))
	merged = append(merged, s.runes...)
	merged = append(merged, other.runes...)
	slices.Sort(merged)
	return Set{runes: slices.Compact(merged)}
}

// Difference returns a new set containing the members of s that are not in
// other. This is the only operation that can collapse to an empty result,
// in which case it fails with ErrEmptySet.
func (s Set) Difference(other Set) (Set, error) {
	var remaining []rune
	for _, r := range s.runes {
		if !other.Contains(r) {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == 0 {
		return Set{}, ErrEmptySet
	}
	return Set{runes: remaining}, nil
}

// Len returns the number of distinct members.
func (s Set) Len() int { return len(s.runes) }

// Contains reports whether r is a member of the set.
func (s Set) Contains(r rune) bool {
	_, found := slices.BinarySearch(s.runes, r)
	return found
}

// Runes returns the members in codepoint order. The returned slice is a
// copy; mutating it does not affect the set.
func (s Set) Runes() []rune {
	return slices.Clone(s.runes)
}

// String returns all members concatenated in codepoint order. Used for
// debug logging and for order-independent comparisons in tests.
func (s Set) String() string { return string(s.runes) }

// Pick draws one member uniformly at random using the supplied entropy
// source. Every member is selected with equal probability regardless of
// the internal ordering. An entropy read failure is returned as-is and
// must be treated as fatal by the caller; there is no retry.
func (s Set) Pick(entropy io.Reader) (rune, error) {
	idx, err := rand.Int(entropy, big.NewInt(int64(len(s.runes))))
	if err != nil {
		return 0, fmt.Errorf("reading entropy source: %w", err)
	}
	return s.runes[idx.Int64()], nil
}
