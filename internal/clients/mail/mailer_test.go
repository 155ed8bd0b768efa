package mail

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	host    string
	port    int
	timeout time.Duration
}

func (c testConfig) Host() string           { return c.host }
func (c testConfig) Port() int              { return c.port }
func (c testConfig) Username() string       { return "bot@example.com" }
func (c testConfig) Password() string       { return "secret" }
func (c testConfig) From() string           { return "bot@example.com" }
func (c testConfig) Timeout() time.Duration { return c.timeout }

func Test_OnCompose_ShouldAttachReport(t *testing.T) {
	m := New(testConfig{host: "smtp.example.com", port: 465, timeout: time.Second})

	gm := m.compose(Message{
		To:             "me@example.com",
		Subject:        "Your Monthly Expense Report",
		Body:           "Attached is your monthly expense report.",
		AttachmentName: "42_report.csv",
		Attachment:     []byte("date,amount,category\n"),
	})

	var buf bytes.Buffer
	_, err := gm.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "Subject: Your Monthly Expense Report")
	assert.Contains(t, raw, "To: me@example.com")
	assert.Contains(t, raw, `filename="42_report.csv"`)
	assert.Contains(t, raw, "application/octet-stream")
	assert.True(t, m.ssl)
}

// silentRelay accepts connections and never writes the SMTP greeting.
func silentRelay(t *testing.T) *net.TCPAddr {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	go func() {
		var conns []net.Conn
		defer func() {
			for _, c := range conns {
				_ = c.Close()
			}
		}()
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()
	return lis.Addr().(*net.TCPAddr)
}

func Test_OnSilentRelay_ShouldGiveUpAfterTimeout(t *testing.T) {
	addr := silentRelay(t)
	m := New(testConfig{host: addr.IP.String(), port: addr.Port, timeout: 200 * time.Millisecond})

	start := time.Now()
	err := m.Send(context.Background(), Message{To: "me@example.com", Subject: "hi", Body: "hello"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func Test_OnSilentRelay_ShouldStopWhenContextEnds(t *testing.T) {
	addr := silentRelay(t)
	m := New(testConfig{host: addr.IP.String(), port: addr.Port, timeout: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := m.Send(ctx, Message{To: "me@example.com", Subject: "hi", Body: "hello"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
