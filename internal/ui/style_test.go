package ui

import (
	"testing"
)

func TestHighlightID_NoTerminal(t *testing.T) {
	// Test stdout is not a terminal, so the ID comes back unstyled.
	if got := HighlightID("abc123", 3); got != "abc123" {
		t.Errorf("expected plain ID, got %q", got)
	}
}

func TestHighlightID_InvalidPrefix(t *testing.T) {
	if got := HighlightID("abc", 10); got != "abc" {
		t.Errorf("expected plain ID for out-of-range prefix, got %q", got)
	}
	if got := HighlightID("", 1); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
