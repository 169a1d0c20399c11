package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// SplitEqually divides amount into n shares that sum exactly to the rounded
// amount. Division happens at paisa precision; leftover paise that do not
// divide evenly are allocated one each to the first shares (largest-remainder
// allocation, all remainders being equal).
func SplitEqually(amount float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	totalPaise := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(int64(MoneyPrecision))).Round(0).IntPart()
	base := totalPaise / int64(n)
	leftover := totalPaise - base*int64(n)

	shares := make([]float64, n)
	for i := range shares {
		paise := base
		if int64(i) < leftover {
			paise++
		}
		shares[i] = float64(paise) / MoneyPrecision
	}
	return shares
}

// SumsTo reports whether the amounts sum exactly to total at paisa precision
func SumsTo(amounts []float64, total float64) bool {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(decimal.NewFromFloat(a))
	}
	return sum.Round(2).Equal(decimal.NewFromFloat(total).Round(2))
}
