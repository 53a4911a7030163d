package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestNextMidnight(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 14, 22, 45, 0, 0, time.Local)
	got := NextMidnight(now, 5*time.Minute)
	want := time.Date(2024, 3, 15, 0, 5, 0, 0, time.Local)

	if !got.Equal(want) {
		t.Fatalf("NextMidnight(%s) = %s, want %s", now, got, want)
	}

	if !got.After(now) {
		t.Fatalf("NextMidnight must be in the future")
	}
}
