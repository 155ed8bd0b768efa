package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SumMoney_ShouldNotDrift(t *testing.T) {
	assert.Equal(t, 0.3, SumMoney(0.1, 0.2))
	assert.Equal(t, 120.0, SumMoney(70, 50))
	assert.Equal(t, 0.0, SumMoney())
}

func Test_SubMoney_ShouldRoundToCents(t *testing.T) {
	assert.Equal(t, 20.0, SubMoney(120, 100))
	assert.Equal(t, 0.1, SubMoney(0.3, 0.2))
}

func Test_FormatMoney(t *testing.T) {
	assert.Equal(t, "12.00", FormatMoney(12))
	assert.Equal(t, "12.35", FormatMoney(12.345))
}

func Test_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}

func Test_Finite(t *testing.T) {
	assert.True(t, Finite(12.5))
	assert.False(t, Finite(math.Inf(1)))
	assert.False(t, Finite(math.NaN()))
}
