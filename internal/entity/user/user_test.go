package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func Test_OnOverspent_ShouldReportOnlyCategoriesAboveLimit(t *testing.T) {
	rec := NewRecord()
	rec.SetLimit("Food", 100)
	rec.SetLimit("taxi", 50)
	rec.Expenses = []ExpenseRecord{
		{Amount: 70, Category: "food", Created: day},
		{Amount: 50, Category: "food", Created: day},
		{Amount: 50, Category: "taxi", Created: day},
		{Amount: 999, Category: "rent", Created: day},
	}

	assert.Equal(t, []Overspend{
		{Category: "food", Spent: 120, Limit: 100, Overage: 20},
	}, rec.Overspent())
}

func Test_OnOverspent_WithoutLimits_ShouldBeEmpty(t *testing.T) {
	rec := NewRecord()
	rec.Expenses = []ExpenseRecord{{Amount: 120, Category: "food", Created: day}}

	assert.Empty(t, rec.Overspent())
}

func Test_OnSpentBetween_ShouldIncludeBoundsOnly(t *testing.T) {
	rec := NewRecord()
	rec.Expenses = []ExpenseRecord{
		{Amount: 1.1, Created: day},
		{Amount: 2.2, Created: day.Add(23 * time.Hour)},
		{Amount: 5, Created: day.AddDate(0, 0, 1)},
		{Amount: 7, Created: day.Add(-time.Second)},
	}

	assert.Equal(t, 3.3, rec.SpentBetween(day, day.Add(24*time.Hour-time.Nanosecond)))
}

func Test_OnNormalize_ShouldFillDefaults(t *testing.T) {
	var rec Record
	rec.Normalize()

	assert.Equal(t, DefaultCurrency, rec.Currency)
	assert.NotNil(t, rec.CategoryLimits)
	assert.NotNil(t, rec.Expenses)
	assert.NotNil(t, rec.Recurring)
	assert.False(t, rec.HasPin())
	assert.Equal(t, "", rec.EmailAddress())
}
