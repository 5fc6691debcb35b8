package geo

import "math"

// RoundDecimals keeps 2 digits after the decimal. SVG attributes carry no
// useful information below that.
func RoundDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
