package usecase

import (
	"math"
	"strconv"
	"strings"
)

// couponTable maps a coupon code to its percent discount. Unknown codes
// simply discount nothing; they are not an error.
var couponTable = map[string]float64{
	"WELCOME10": 10,
	"SAVE20":    20,
	"GOSPEL30":  30,
}

func couponPercent(code string) float64 {
	return couponTable[strings.ToUpper(strings.TrimSpace(code))]
}

// parseDisplayPrice turns a catalog display price ("$49.00") into a number.
// Unparseable strings count as zero so one bad record never sinks a quote.
func parseDisplayPrice(price string) float64 {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
