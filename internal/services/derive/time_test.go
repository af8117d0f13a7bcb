package derive

import (
	"testing"
	"time"
)

func TestRelativeJustNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Relative(now.Format(time.RFC3339), now); got != "just now" {
		t.Fatalf("got %q", got)
	}
	if got := Relative(now.Add(-30*time.Second).Format(time.RFC3339), now); got != "just now" {
		t.Fatalf("got %q", got)
	}
}

func TestRelativeMinutes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Relative(now.Add(-90*time.Second).Format(time.RFC3339), now); got != "1 minutes ago" {
		t.Fatalf("got %q", got)
	}
	if got := Relative(now.Add(-59*time.Minute).Format(time.RFC3339), now); got != "59 minutes ago" {
		t.Fatalf("got %q", got)
	}
}

func TestRelativeHours(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Relative(now.Add(-3*time.Hour).Format(time.RFC3339), now); got != "3 hours ago" {
		t.Fatalf("got %q", got)
	}
}

func TestRelativeDays(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if got := Relative(now.Add(-50*time.Hour).Format(time.RFC3339), now); got != "2 days ago" {
		t.Fatalf("got %q", got)
	}
}

func TestRelativeInvalid(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"", "not-a-date", "2025-13-99"} {
		if got := Relative(in, now); got != RelativeUnknown {
			t.Fatalf("Relative(%q) = %q, want %q", in, got, RelativeUnknown)
		}
	}
}
