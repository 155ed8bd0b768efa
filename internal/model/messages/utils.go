package messages

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-bot/internal/utils"
)

const commandParts = 2

// parseCommand splits "/cmd@bot arg..." into "/cmd" and the rest. Text without
// a leading slash is returned whole as arg.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	cmd = split[0]
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return strings.ToLower(cmd), arg
}

// parseAmount accepts non-negative decimals such as "2000" or "12.50".
func parseAmount(text string) (float64, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || amount.IsNegative() {
		return 0, false
	}
	value := amount.InexactFloat64()
	if !utils.Finite(value) {
		return 0, false
	}
	return value, true
}

func validEmail(text string) bool {
	addr, err := mail.ParseAddress(text)
	if err != nil || addr.Address != text {
		return false
	}
	at := strings.LastIndexByte(text, '@')
	return at > 0 && strings.Contains(text[at+1:], ".")
}
