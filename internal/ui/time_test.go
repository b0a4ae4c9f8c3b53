package ui

import (
	"testing"
	"time"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m"},
		{59 * time.Minute, "59m"},
		{25 * time.Hour, "1d"},
		{3 * time.Hour, "3h"},
		{40 * 24 * time.Hour, "40d"},
	}

	for _, tc := range cases {
		if got := FormatDurationShort(tc.duration); got != tc.want {
			t.Errorf("FormatDurationShort(%v) = %q, want %q", tc.duration, got, tc.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatTimeAgo(now.Add(-2*time.Minute), now); got != "2m ago" {
		t.Errorf("expected 2m ago, got %q", got)
	}
	if got := FormatTimeAgo(time.Time{}, now); got != "-" {
		t.Errorf("expected - for zero time, got %q", got)
	}
	if got := FormatTimeAgo(now.Add(time.Hour), now); got != "0s ago" {
		t.Errorf("expected clamped future time, got %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	ts := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	if got := FormatClock(ts); got != "2025-06-01 09:30" {
		t.Errorf("unexpected clock format: %q", got)
	}
}
