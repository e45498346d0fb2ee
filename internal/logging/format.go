// internal/logging/format.go
package logging

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// timestampLayout matches ISO-8601 with millisecond precision in UTC,
// e.g. 2024-01-02T03:04:05.678Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// benchmarkLabel is the level name printed for benchmark results.
const benchmarkLabel = "BENCHMARK"

// FormatMessage renders "[<timestamp>] [<label>] [<module>] <message>".
func FormatMessage(ts time.Time, label, module, message string) string {
	var b strings.Builder
	b.Grow(len(timestampLayout) + len(label) + len(module) + len(message) + 10)
	b.WriteByte('[')
	b.WriteString(ts.UTC().Format(timestampLayout))
	b.WriteString("] [")
	b.WriteString(label)
	b.WriteString("] [")
	b.WriteString(module)
	b.WriteString("] ")
	b.WriteString(message)
	return b.String()
}

// BenchmarkMessage appends the duration in milliseconds with two decimals:
// "batch done (12.35ms)".
func BenchmarkMessage(message string, durationMs float64) string {
	return message + " (" + fixed2(durationMs) + "ms)"
}

var (
	hundred = big.NewInt(100)
	half    = big.NewRat(1, 2)
)

// fixed2 formats d with two decimals, rounding the exact binary value and
// breaking exact ties away from zero. 0.125 gives "0.13"; 2.675 is stored
// just below the tie and gives "2.67".
func fixed2(d float64) string {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return strconv.FormatFloat(d, 'f', 2, 64)
	}

	sign := ""
	if math.Signbit(d) && d != 0 {
		sign = "-"
		d = -d
	}

	scaled := new(big.Rat).SetFloat64(d)
	scaled.Mul(scaled, new(big.Rat).SetInt(hundred))

	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	frac := new(big.Rat).Sub(scaled, new(big.Rat).SetInt(n))
	if frac.Cmp(half) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}
