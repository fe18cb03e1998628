package domain

import "math"

// PctChange returns the percentage delta of current vs. previous, rounded to
// one decimal. A zero base yields 0 rather than an undefined ratio. The
// divisor is the absolute previous value so a swing across zero keeps a
// meaningful sign.
func PctChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return Round1((current - previous) / math.Abs(previous) * 100)
}

// Round1 rounds to one decimal place.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// ShareOfTotal returns value/total as a percentage rounded to one decimal,
// or 0 when total is zero.
func ShareOfTotal(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round1(value / total * 100)
}
