package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
telegram:
  token: yaml-token
app:
  timezone: UTC
  metrics-addr: ":8080"
storage:
  backend: file
  data-dir: /var/lib/expense-bot
scheduler:
  summary-at: "21:30"
smtp:
  username: bot@example.com
`

func Test_OnParse_ShouldApplyDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "yaml-token", cfg.Telegram().Token())
	assert.Equal(t, "/var/lib/expense-bot/keys", cfg.Storage().KeysDir())
	assert.Equal(t, 21*time.Hour+30*time.Minute, cfg.Scheduler().SummaryAt())
	assert.Equal(t, 20*time.Hour+5*time.Minute, cfg.Scheduler().LimitsAt())
	assert.Equal(t, time.Minute, cfg.Scheduler().PollInterval())
	assert.Equal(t, DeliveryDirect, cfg.Scheduler().ReportDelivery())
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP().Host())
	assert.Equal(t, "bot@example.com", cfg.SMTP().From())
	assert.Equal(t, 30*time.Second, cfg.SMTP().Timeout())
	assert.Equal(t, time.UTC, cfg.App().Location())
	assert.Equal(t, time.Duration(0), cfg.Rates().TTL())
}

func Test_OnParse_ShouldPreferEnvironmentSecrets(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("SMTP_PASSWORD", "hunter2")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram().Token())
	assert.Equal(t, "hunter2", cfg.SMTP().Password())
}

func Test_OnParse_ShouldRejectInvalidSections(t *testing.T) {
	raw := `
storage:
  backend: postgres
receipts:
  backend: s3
scheduler:
  report-at: "9am"
  report-delivery: kafka
smtp:
  timeout-seconds: 0
`
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres.host")
	assert.Contains(t, err.Error(), "receipts.bucket")
	assert.Contains(t, err.Error(), "scheduler.report-at")
	assert.Contains(t, err.Error(), "kafka.brokers")
	assert.Contains(t, err.Error(), "smtp.timeout-seconds")
}

func Test_ParseTimeOfDay(t *testing.T) {
	d, err := ParseTimeOfDay("08:15")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+15*time.Minute, d)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}
