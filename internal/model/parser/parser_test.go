package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	cases := []struct {
		text     string
		amount   float64
		category string
	}{
		{"Spent 50 on food", 50, "food"},
		{"bought lunch 12", 12, "lunch"},
		{"PAID 12.5 FOR Taxi", 12.5, "taxi"},
		{"spent 7.25 coffee", 7.25, "coffee"},
		{"Netflix 100", 100, "netflix"},
		{"50", 50, "misc"},
		{"paid 20 for", 20, "misc"},
		{"spent 30 onions", 30, "onions"},
		{"spent 40 on groceries at the market", 40, "groceries"},
		{"кофе 3", 3, "кофе"},
		{"paid 12.5eur for taxi", 12.5, "eur"},
		{"12.345 coffee", 12.34, "coffee"},
		{"spent 50food", 50, "food"},
		{"lunch12", 12, "lunch"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			exp, ok := Parse(tc.text)
			require.True(t, ok)
			assert.Equal(t, tc.amount, exp.Amount)
			assert.Equal(t, tc.category, exp.Category)
			assert.Equal(t, tc.text, exp.Description)
			assert.True(t, exp.Created.IsZero())
		})
	}
}

func Test_Parse_ShouldRejectTextWithoutAmount(t *testing.T) {
	for _, text := range []string{"hello there", "", "spent on food", "0", "spent 0 on food", strings.Repeat("9", 400)} {
		_, ok := Parse(text)
		assert.False(t, ok, text)
	}
}

func Test_ParseAt_ShouldStampCreationTime(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	exp, ok := ParseAt("spent 5 on bus", at)

	require.True(t, ok)
	assert.Equal(t, at, exp.Created)
}
