package derive

import "BayPortal/internal/domain/models"

// SeverityIcon maps an action severity to its display icon. Total over the
// enum plus anything unexpected, which falls back to the low icon.
func SeverityIcon(severity string) string {
	switch severity {
	case models.SeverityHigh:
		return "🔴"
	case models.SeverityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}
