package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// formatPrice renders a USD price with thousands separators
func formatPrice(v float64) string {
	decimals := 2
	if v < 1 {
		decimals = 4
	}

	raw := strconv.FormatFloat(v, 'f', decimals, 64)
	whole, frac, _ := strings.Cut(raw, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return "$" + b.String() + "." + frac
}

// formatVolume renders a volume in compact form
func formatVolume(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
