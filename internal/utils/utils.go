package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func Contains[T comparable](items []T, item T) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}

// Money rounds to cents through decimal so that float sums don't drift.
func Money(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(moneyPlaces).InexactFloat64()
}

// SumMoney adds amounts as decimals and rounds the result to cents.
func SumMoney(amounts ...float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return sum.Round(moneyPlaces).InexactFloat64()
}

// SubMoney returns a-b rounded to cents.
func SubMoney(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(moneyPlaces).InexactFloat64()
}

func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(moneyPlaces)
}

// Finite reports whether amount can be stored: not infinite and not NaN.
func Finite(amount float64) bool {
	return !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
