package currency

import (
	"math"
	"strconv"
)

// FormatUSD renders a raw fare as the display string used when the upstream
// omits its own formatted price, e.g. "$1,234".
func FormatUSD(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(rounded, 10)
	grouped := groupThousands(digits)

	if amount < 0 && rounded != 0 {
		return "-$" + grouped
	}
	return "$" + grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	out := digits[:head]
	for i := head; i < len(digits); i += 3 {
		out += "," + digits[i:i+3]
	}
	return out
}
