package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 33.33, Round(33.333333))
	assert.Equal(t, 33.34, Round(33.335))
	assert.Equal(t, 0.0, Round(0.001))
	assert.Equal(t, -12.35, Round(-12.345001))
}

func TestSplitEqually_ExactDivision(t *testing.T) {
	shares := SplitEqually(300, 3)
	assert.Equal(t, []float64{100, 100, 100}, shares)
}

func TestSplitEqually_LeftoverPaiseGoToFirstShares(t *testing.T) {
	shares := SplitEqually(100, 3)
	assert.Equal(t, []float64{33.34, 33.33, 33.33}, shares)

	var total float64
	for _, share := range shares {
		total += share
	}
	assert.Equal(t, 100.0, Round(total))
}

func TestSplitEqually_SmallAmounts(t *testing.T) {
	shares := SplitEqually(0.05, 3)
	assert.Equal(t, []float64{0.02, 0.02, 0.01}, shares)
}

func TestSplitEqually_InvalidCount(t *testing.T) {
	assert.Nil(t, SplitEqually(100, 0))
	assert.Nil(t, SplitEqually(100, -1))
}

func TestSumsTo(t *testing.T) {
	assert.True(t, SumsTo([]float64{33.34, 33.33, 33.33}, 100))
	assert.True(t, SumsTo([]float64{0.1, 0.2}, 0.3), "binary float artifacts must not fail the check")
	assert.False(t, SumsTo([]float64{40, 50}, 100))
	assert.False(t, SumsTo([]float64{50.004, 50.004}, 100), "off by a paisa after rounding")
}
