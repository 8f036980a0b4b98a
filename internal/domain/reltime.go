package domain

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders t relative to now: "today", "1 day ago",
// "N days ago", "N mo ago" (30-day months) or "N yr ago".
func FormatRelativeTime(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	}
	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%d mo ago", months)
	}
	return fmt.Sprintf("%d yr ago", months/12)
}
