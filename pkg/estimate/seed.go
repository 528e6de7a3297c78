// Package estimate produces the deterministic synthetic datasets used
// when authoritative data is unavailable or does not exist upstream.
// Every generator is a pure function of a seed derived from a stable
// identity string: same input, same series, across runs and processes.
// All outputs are flavor data and carry an "estimated" provenance so
// they are never mistaken for disclosed figures.
package estimate

import (
	"fmt"
	"strconv"
)

// Disclaimer accompanies every estimated financial series.
const Disclaimer = "Net worth figures are estimates based on financial disclosure filings. Actual values may vary."

// Seed hashes a stable identity string (display name or bioguide ID)
// into the integer that parameterizes every generator. It is the sum of
// the string's byte values: not cryptographic, collisions between
// different names are acceptable. The exact hash is load-bearing -
// tests assert literal generated values - so it must not change.
// Inputs are ASCII in practice (names and bioguide IDs).
func Seed(s string) int {
	sum := 0
	for _, b := range []byte(s) {
		sum += int(b)
	}
	return sum
}

// formatDollars renders whole dollars with thousands separators,
// e.g. 831400 -> "$831,400".
func formatDollars(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-$" + string(out)
	}
	return "$" + string(out)
}

// formatMillions renders whole dollars in millions with one decimal,
// e.g. 2500000 -> "$2.5M".
func formatMillions(amount int64) string {
	return fmt.Sprintf("$%.1fM", float64(amount)/1000000)
}
