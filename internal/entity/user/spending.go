package user

import (
	"sort"
	"time"

	"max.ks1230/expense-bot/internal/utils"
)

// SpentBetween sums expenses created in [from, to].
func (r *Record) SpentBetween(from, to time.Time) float64 {
	amounts := make([]float64, 0, len(r.Expenses))
	for _, exp := range r.Expenses {
		if exp.Created.Before(from) || exp.Created.After(to) {
			continue
		}
		amounts = append(amounts, exp.Amount)
	}
	return utils.SumMoney(amounts...)
}

// SpentByCategory sums all expenses per category.
func (r *Record) SpentByCategory() map[string]float64 {
	res := make(map[string]float64)
	for _, exp := range r.Expenses {
		cat := NormalizeCategory(exp.Category)
		res[cat] = utils.SumMoney(res[cat], exp.Amount)
	}
	return res
}

type Overspend struct {
	Category string
	Spent    float64
	Limit    float64
	Overage  float64
}

// Overspent lists categories spent strictly above their limit, sorted by category.
func (r *Record) Overspent() []Overspend {
	res := make([]Overspend, 0)
	for cat, spent := range r.SpentByCategory() {
		limit, ok := r.Limit(cat)
		if !ok || spent <= limit {
			continue
		}
		res = append(res, Overspend{
			Category: cat,
			Spent:    spent,
			Limit:    limit,
			Overage:  utils.SubMoney(spent, limit),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Category < res[j].Category
	})
	return res
}
