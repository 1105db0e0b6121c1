package helpers

import (
	"math"
	"strconv"
)

// FormatAmount prints a currency amount the shortest way that round-trips:
// 200 as "200", 1234.5 as "1234.5".
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
