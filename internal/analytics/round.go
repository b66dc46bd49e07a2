package analytics

import "math"

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	pow := math.Pow10(places)
	return math.Round(v*pow) / pow
}

// RoundPtr rounds an optional value, keeping nil as nil
func RoundPtr(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}
	r := Round(*v, places)
	return &r
}

// Weight-like metrics serialize with two decimals, correlation and value-factor-like metrics with four.
const (
	WeightPlaces = 2
	RatioPlaces  = 4
)
