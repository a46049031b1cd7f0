// Package testkit provides testing helpers
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle. On failure the haystack is written to a
// temp file so long renders (logs, YAML) stay readable
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		tmpfile := filepath.Join(t.TempDir(), "output.txt")
		_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
	}
}

// MustCode asserts err carries the given code, and the field when one is named
func MustCode(t *testing.T, err error, code perr.ErrorCode, field ...string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := perr.CodeOf(err); got != code {
		t.Fatalf("code = %s, want %s (err: %v)", got, code, err)
	}
	if len(field) == 0 {
		return
	}
	e, _ := perr.As(err)
	if e.Field() != field[0] {
		t.Fatalf("field = %q, want %q (err: %v)", e.Field(), field[0], err)
	}
}

// MustAngle asserts two ecliptic longitudes agree within tol degrees, across the 0/360 seam
func MustAngle(t *testing.T, want, got, tol float64) {
	t.Helper()
	d := math.Abs(math.Mod(got-want, 360))
	if d > 180 {
		d = 360 - d
	}
	if d > tol || math.IsNaN(d) {
		t.Fatalf("longitude = %.9f, want %.9f (±%g)", got, want, tol)
	}
}
