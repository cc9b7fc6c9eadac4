package fmt

import (
	"fmt"
	"strings"
)

// SprintFloat formats value with at most decimal digits after the point, trimming trailing
// zeros (and the point itself, when nothing is left after it).
func SprintFloat(value float64, decimal uint) string {
	if decimal == 0 {
		return fmt.Sprintf("%.0f", value)
	}
	floatStr := fmt.Sprintf("%.*f", int(decimal), value)
	return strings.TrimRight(strings.TrimRight(floatStr, "0"), ".")
}
