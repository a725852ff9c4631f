package prices

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a display price with tiered precision: thousands get
// a separator and no decimals, hundreds no decimals, tens two decimals,
// everything smaller three. Whole-dollar tiers round half away from zero.
func FormatPrice(price float64, unit string) string {
	switch {
	case price >= 1000:
		return "$" + groupThousands(int64(math.Round(price))) + unit
	case price >= 100:
		return fmt.Sprintf("$%d%s", int64(math.Round(price)), unit)
	case price >= 10:
		return fmt.Sprintf("$%.2f%s", price, unit)
	default:
		return fmt.Sprintf("$%.3f%s", price, unit)
	}
}

// FormatChange renders a signed one-decimal percentage; non-negative
// values carry an explicit plus.
func FormatChange(changePct float64) string {
	sign := ""
	if changePct >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, changePct)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
