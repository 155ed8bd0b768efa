package user

import (
	"strings"
	"time"

	"max.ks1230/expense-bot/internal/entity/currency"
)

const (
	DefaultCurrency = currency.Base
	DefaultCategory = "misc"
)

type ExpenseRecord struct {
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Created     time.Time `json:"date,omitzero"`
	Description string    `json:"description,omitempty"`
}

type Record struct {
	Pin            *string            `json:"pin"`
	Currency       string             `json:"currency"`
	Budget         float64            `json:"budget"`
	CategoryLimits map[string]float64 `json:"category_limits"`
	Expenses       []ExpenseRecord    `json:"expenses"`
	Recurring      []ExpenseRecord    `json:"recurring"`
	Email          *string            `json:"email"`
}

// NewRecord returns the record a user gets on first contact.
func NewRecord() Record {
	return Record{
		Currency:       DefaultCurrency,
		CategoryLimits: make(map[string]float64),
		Expenses:       make([]ExpenseRecord, 0),
		Recurring:      make([]ExpenseRecord, 0),
	}
}

// Normalize fills defaults left empty by older or hand-edited records.
func (r *Record) Normalize() {
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
	if r.CategoryLimits == nil {
		r.CategoryLimits = make(map[string]float64)
	}
	if r.Expenses == nil {
		r.Expenses = make([]ExpenseRecord, 0)
	}
	if r.Recurring == nil {
		r.Recurring = make([]ExpenseRecord, 0)
	}
}

func (r *Record) HasPin() bool {
	return r.Pin != nil && *r.Pin != ""
}

func (r *Record) SetPin(pin string) {
	r.Pin = &pin
}

func (r *Record) EmailAddress() string {
	if r.Email == nil {
		return ""
	}
	return *r.Email
}

func (r *Record) SetEmail(email string) {
	r.Email = &email
}

func (r *Record) SetLimit(category string, limit float64) {
	if r.CategoryLimits == nil {
		r.CategoryLimits = make(map[string]float64)
	}
	r.CategoryLimits[NormalizeCategory(category)] = limit
}

func (r *Record) Limit(category string) (float64, bool) {
	lim, ok := r.CategoryLimits[NormalizeCategory(category)]
	return lim, ok
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
