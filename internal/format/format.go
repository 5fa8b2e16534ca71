// Package format renders record values for chat replies. Every
// function is a pure, total mapping.
package format

import (
	"fmt"
	"strconv"
)

// CompactNumber renders with a K/M/B suffix, one decimal place, using
// the largest unit not exceeding the value. Values under 1000 render
// as-is, zero renders as "0".
func CompactNumber(n int) string {
	switch {
	case n == 0:
		return "0"
	case n < 1_000:
		return strconv.Itoa(n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	case n < 1_000_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	default:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000)
	}
}

// ExactNumber renders with a comma every three digits.
func ExactNumber(n int) string {
	if n < 0 {
		return "-" + ExactNumber(-n)
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	head := len(s) % 3
	if head == 0 {
		head = 3
	}

	out := s[:head]
	for i := head; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}

	return out
}

// Duration renders a second count as the coarsest two-unit breakdown:
// "45s", "2m 5s", "1h 2m", "1d 1h".
func Duration(seconds int64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	case seconds < 86400:
		return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
	default:
		return fmt.Sprintf("%dd %dh", seconds/86400, (seconds%86400)/3600)
	}
}
