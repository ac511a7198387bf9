// Package stats computes summary statistics over render latency samples.
package stats

import (
	"math"
	"strconv"
	"strings"
)

// DisplayPrecision is the number of significant figures used for display text.
const DisplayPrecision = 4

// Statistics holds the mean and population standard deviation of a window
// snapshot in milliseconds. Values keep full precision.
type Statistics struct {
	Mean   float64
	StdDev float64
	N      int
}

// Compute returns the mean and population standard deviation of values.
// An empty slice yields the zero Statistics.
func Compute(values []float64) Statistics {
	n := len(values)
	if n == 0 {
		return Statistics{}
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)
	return Statistics{Mean: mean, StdDev: math.Sqrt(variance), N: n}
}

// MeanText returns the mean rounded for display.
func (s Statistics) MeanText() string { return FormatPrecision(s.Mean, DisplayPrecision) }

// StdDevText returns the standard deviation rounded for display.
func (s Statistics) StdDevText() string { return FormatPrecision(s.StdDev, DisplayPrecision) }

// FormatPrecision formats v with p significant figures. Fixed notation is used
// while the decimal exponent lies in [-6, p); outside that range the result is
// exponential with an unpadded exponent, e.g. "1.235e+4".
func FormatPrecision(v float64, p int) string {
	if p < 1 {
		p = 1
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		return strconv.FormatFloat(0, 'f', p-1, 64)
	}
	// Round first so that e.g. 9.99996 is classified by its rounded exponent.
	sci := strconv.FormatFloat(v, 'e', p-1, 64)
	i := strings.IndexByte(sci, 'e')
	exp, err := strconv.Atoi(sci[i+1:])
	if err != nil {
		return sci
	}
	if exp < -6 || exp >= p {
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		return sci[:i] + "e" + sign + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(v, 'f', p-1-exp, 64)
}
