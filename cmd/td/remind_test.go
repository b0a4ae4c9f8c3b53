package main

import (
	"testing"
	"time"
)

func TestParseWhenAbsolute(t *testing.T) {
	got, err := parseWhen("2025-06-01 15:04")
	if err != nil {
		t.Fatalf("parseWhen: %v", err)
	}

	want := time.Date(2025, 6, 1, 15, 4, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseWhenTimeOfDay(t *testing.T) {
	got, err := parseWhen("09:30")
	if err != nil {
		t.Fatalf("parseWhen: %v", err)
	}

	now := time.Now()
	if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
		t.Errorf("bare time of day must land on today, got %v", got)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Errorf("got %02d:%02d, want 09:30", got.Hour(), got.Minute())
	}
}

func TestParseWhenDuration(t *testing.T) {
	before := time.Now()
	got, err := parseWhen("2h")
	if err != nil {
		t.Fatalf("parseWhen: %v", err)
	}

	if got.Before(before.Add(2*time.Hour)) || got.After(time.Now().Add(2*time.Hour)) {
		t.Errorf("duration must be measured from now, got %v", got)
	}
}

func TestParseWhenInvalid(t *testing.T) {
	for _, value := range []string{"", "soonish", "25:99"} {
		if _, err := parseWhen(value); err == nil {
			t.Errorf("parseWhen(%q) succeeded", value)
		}
	}
}
