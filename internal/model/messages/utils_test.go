package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseCommand(t *testing.T) {
	tests := []struct {
		text string
		cmd  string
		arg  string
	}{
		{text: "/start", cmd: "/start"},
		{text: " /add  spent 5 on tea ", cmd: "/add", arg: "spent 5 on tea"},
		{text: "/Summary@ExpenseBot", cmd: "/summary"},
		{text: "spent 5 on tea", arg: "spent 5 on tea"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, arg := parseCommand(tt.text)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.arg, arg)
		})
	}
}

func Test_ValidEmail(t *testing.T) {
	assert.True(t, validEmail("a@b.io"))
	assert.False(t, validEmail("bad@"))
	assert.False(t, validEmail("a@localhost"))
	assert.False(t, validEmail("Name <a@b.io>"))
}

func Test_ParseAmount(t *testing.T) {
	amount, ok := parseAmount("12.50")
	assert.True(t, ok)
	assert.Equal(t, 12.5, amount)

	_, ok = parseAmount("-1")
	assert.False(t, ok)

	_, ok = parseAmount("ten")
	assert.False(t, ok)

	_, ok = parseAmount("1e400")
	assert.False(t, ok)
}
