// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package security

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	s := FromString("supersecret")
	if got := fmt.Sprintf("%v", s); got != "[SECRET]" {
		t.Fatalf("unexpected fmt output: %q", got)
	}
	if got := fmt.Sprintf("%s", s); got != "[SECRET]" {
		t.Fatalf("unexpected fmt output: %q", got)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(b) != "\"[SECRET]\"" {
		t.Fatalf("unexpected json marshal: %s", string(b))
	}
}

func TestSecretUse(t *testing.T) {
	s := FromString("pw123")
	var seen string
	err := s.Use(func(b []byte) error {
		seen = string(b)
		return nil
	})
	if err != nil {
		t.Fatalf("Use failed: %v", err)
	}
	if seen != "pw123" {
		t.Fatalf("Use saw %q, want %q", seen, "pw123")
	}
}

func TestSecretZero(t *testing.T) {
	s := FromString("abc123")
	(&s).Zero()
	for i, b := range s.Bytes() {
		if b != 0 {
			t.Fatalf("expected zeroed byte at index %d, got %d", i, b)
		}
	}
}
