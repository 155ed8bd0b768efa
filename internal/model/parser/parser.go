package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-bot/internal/entity/user"
	"max.ks1230/expense-bot/internal/utils"
)

// expensePattern: optional verb, amount, optional preposition, optional one-word category.
// The amount needs no word boundary: "12.5eur" and "lunch12" both carry one. Decimals
// past the second place are dropped.
var expensePattern = regexp.MustCompile(
	`(?i)(?:\b(?:spent|paid|bought)\s+)?(\d+(?:\.\d{1,2})?)\d*(?:\s+(?:on|for)\b)?(?:\s*([\p{L}\d_]+))?`,
)

var (
	wordPattern = regexp.MustCompile(`[\p{L}_][\p{L}\d_]*`)
	verbs       = []string{"spent", "paid", "bought", "on", "for"}
)

// Parse extracts an expense from free text. It is a heuristic, not a grammar:
// multi-word categories are cut to one word. Created is left for the caller.
func Parse(text string) (user.ExpenseRecord, bool) {
	text = strings.TrimSpace(text)
	m := expensePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return user.ExpenseRecord{}, false
	}

	amount, err := decimal.NewFromString(text[m[2]:m[3]])
	if err != nil || !amount.IsPositive() || !utils.Finite(amount.InexactFloat64()) {
		return user.ExpenseRecord{}, false
	}

	category := ""
	if m[4] >= 0 {
		category = text[m[4]:m[5]]
	} else {
		category = lastWordBefore(text[:m[2]])
	}
	if category == "" {
		category = user.DefaultCategory
	}

	return user.ExpenseRecord{
		Amount:      amount.InexactFloat64(),
		Category:    user.NormalizeCategory(category),
		Description: text,
	}, true
}

// ParseAt is Parse with the creation time filled in.
func ParseAt(text string, at time.Time) (user.ExpenseRecord, bool) {
	exp, ok := Parse(text)
	if ok {
		exp.Created = at
	}
	return exp, ok
}

func lastWordBefore(prefix string) string {
	words := wordPattern.FindAllString(prefix, -1)
	for i := len(words) - 1; i >= 0; i-- {
		w := strings.ToLower(words[i])
		if !utils.Contains(verbs, w) {
			return w
		}
	}
	return ""
}
