package tui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{3 * time.Minute, "3m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAgo(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	if got := FormatAgo(now, now); got != "just now" {
		t.Fatalf("FormatAgo(now) = %q", got)
	}
	if got := FormatAgo(now, now.Add(-3*time.Minute)); got != "3m ago" {
		t.Fatalf("FormatAgo(-3m) = %q", got)
	}
	if got := FormatAgo(now, now.Add(-48*time.Hour)); !strings.HasPrefix(got, "Mar ") {
		t.Fatalf("FormatAgo(-48h) = %q", got)
	}
}

func TestFormatCountdown(t *testing.T) {
	if FormatCountdown(60) != "60s" || FormatCountdown(-1) != "0s" {
		t.Fatalf("unexpected countdown labels")
	}
}

func TestVersionLabel(t *testing.T) {
	if got := versionLabel(); got != "v"+AppVersion {
		t.Fatalf("versionLabel() = %q", got)
	}
}
