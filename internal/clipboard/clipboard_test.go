// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package clipboard

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClipboard swaps the atotto indirection for an in-memory clipboard so
// tests run without a display server.
type fakeClipboard struct {
	mu      sync.Mutex
	content string
}

func (f *fakeClipboard) write(s string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = s
	return nil
}

func (f *fakeClipboard) read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content, nil
}

func (f *fakeClipboard) set(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = s
}

func installFake(t *testing.T) *fakeClipboard {
	t.Helper()
	fake := &fakeClipboard{}
	origWrite, origRead, origUnsup, origPoll := writeAll, readAll, unsupported, pollInterval
	writeAll = fake.write
	readAll = fake.read
	unsupported = func() bool { return false }
	pollInterval = time.Millisecond
	t.Cleanup(func() {
		writeAll, readAll, unsupported, pollInterval = origWrite, origRead, origUnsup, origPoll
	})
	return fake
}

func TestDirectDeliverStoresExactly(t *testing.T) {
	fake := installFake(t)
	if err := (Direct{}).Deliver([]byte("s3cret!")); err != nil {
		t.Fatalf("Deliver failed: %v", err)
	}
	got, _ := fake.read()
	// Exact content, no trailing newline.
	if got != "s3cret!" {
		t.Fatalf("clipboard content = %q, want %q", got, "s3cret!")
	}
}

func TestStoreUnsupportedPlatform(t *testing.T) {
	installFake(t)
	unsupported = func() bool { return true }
	err := (Direct{}).Deliver([]byte("pw"))
	if !errors.Is(err, ErrInit) {
		t.Fatalf("error = %v, want ErrInit", err)
	}
}

func TestStoreWriteFailure(t *testing.T) {
	installFake(t)
	writeAll = func(string) error { return errors.New("xclip exploded") }
	err := (Direct{}).Deliver([]byte("pw"))
	if !errors.Is(err, ErrStore) {
		t.Fatalf("error = %v, want ErrStore", err)
	}
	if !strings.Contains(err.Error(), "xclip exploded") {
		t.Fatalf("error %q should carry the underlying cause", err)
	}
}

func TestHoldClipboardUntilSuperseded(t *testing.T) {
	fake := installFake(t)

	done := make(chan error, 1)
	go func() {
		done <- holdClipboard(strings.NewReader("hunter2"))
	}()

	// The hold must not end while our password is still in the clipboard.
	deadline := time.After(5 * time.Second)
	for {
		if got, _ := fake.read(); got == "hunter2" {
			break
		}
		select {
		case err := <-done:
			t.Fatalf("holdClipboard returned early: %v", err)
		case <-deadline:
			t.Fatal("password never stored")
		case <-time.After(time.Millisecond):
		}
	}

	select {
	case err := <-done:
		t.Fatalf("holdClipboard returned while still owning the clipboard: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	// Supersede the clipboard; the hold must end.
	fake.set("something else")
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("holdClipboard failed: %v", err)
		}
	case <-deadline:
		t.Fatal("holdClipboard did not end after supersession")
	}
}

func TestWaitUntilSupersededSurvivesReadErrors(t *testing.T) {
	installFake(t)
	var calls int
	readAll = func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("clipboard busy")
		}
		return "replaced", nil
	}
	waitUntilSuperseded("pw")
	if calls < 3 {
		t.Fatalf("expected polling through read errors, got %d calls", calls)
	}
}

func TestHoldClipboardStoreFailure(t *testing.T) {
	installFake(t)
	writeAll = func(string) error { return errors.New("no display") }
	if err := holdClipboard(strings.NewReader("pw")); !errors.Is(err, ErrStore) {
		t.Fatalf("error = %v, want ErrStore", err)
	}
}
