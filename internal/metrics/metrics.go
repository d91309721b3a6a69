// Package metrics holds the shared arithmetic for the analytics services:
// guarded percentage math, UTC month bucketing and elapsed-day computation.
// Every division in the analytics layer goes through here so a zero
// denominator always yields 0 instead of an error.
package metrics

import (
	"fmt"
	"math"
	"time"
)

// Rate returns numerator/denominator as a percentage rounded to two
// decimals. A zero denominator yields 0.
func Rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return Round2(float64(numerator) / float64(denominator) * 100)
}

// Round2 rounds to two decimal places for external-facing values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SafeDiv returns a/b, or 0 when b is 0.
func SafeDiv(a float64, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// MonthBucket maps a timestamp to its UTC calendar month label, "YYYY-MM".
// Lexicographic order of labels is chronological order.
func MonthBucket(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d", u.Year(), int(u.Month()))
}

// DaysBetween returns the elapsed days from earlier to later, including the
// fractional part. Callers skip records where either timestamp is missing.
func DaysBetween(earlier, later time.Time) float64 {
	return later.Sub(earlier).Hours() / 24
}

// WeightedSum sums value*weight over parallel slices. Extra elements of the
// longer slice are ignored.
func WeightedSum(values, weights []float64) float64 {
	n := len(values)
	if len(weights) < n {
		n = len(weights)
	}
	var total float64
	for i := 0; i < n; i++ {
		total += values[i] * weights[i]
	}
	return total
}
