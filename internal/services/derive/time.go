package derive

import (
	"fmt"
	"time"

	"BayPortal/pkg/util"
)

// RelativeUnknown is returned for timestamps that cannot be parsed.
const RelativeUnknown = "unknown"

// Relative formats a timestamp as a coarse "N units ago" string relative to
// now. Unparsable input yields RelativeUnknown, never an error.
func Relative(ts string, now time.Time) string {
	t, ok := util.ParseTime(ts)
	if !ok {
		return RelativeUnknown
	}
	return RelativeTime(t, now)
}

// RelativeTime is Relative for an already-parsed time.
func RelativeTime(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/1440)
	}
}
