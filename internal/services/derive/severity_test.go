package derive

import (
	"testing"

	"BayPortal/internal/domain/models"
)

func TestSeverityIcon(t *testing.T) {
	cases := map[string]string{
		models.SeverityHigh:   "🔴",
		models.SeverityMedium: "🟡",
		models.SeverityLow:    "🟢",
		"":                    "🟢",
		"critical":            "🟢",
	}
	for in, want := range cases {
		if got := SeverityIcon(in); got != want {
			t.Fatalf("SeverityIcon(%q) = %q, want %q", in, got, want)
		}
	}
}
