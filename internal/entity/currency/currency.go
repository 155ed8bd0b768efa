package currency

import (
	"regexp"
	"strings"
)

const (
	USD = "USD"
	EUR = "EUR"
	GHS = "GHS"
)

// Base is the currency every rate is quoted against.
const Base = USD

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// NormalizeCode upper-cases and validates a 3-letter code.
func NormalizeCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code, codePattern.MatchString(code)
}
