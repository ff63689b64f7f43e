package model

import "math"

// RoundCurrency rounds an amount to 2 decimal places, half away from zero.
// Every derived monetary value goes through this one helper so totals
// reconcile without drift.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
