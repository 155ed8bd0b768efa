package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	url, key string
	timeout  time.Duration
}

func (c testConfig) Endpoint() string       { return c.url }
func (c testConfig) ApiKey() string         { return c.key }
func (c testConfig) Timeout() time.Duration { return c.timeout }

func Test_OnGetRates_ShouldSendBaseAndKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("base"))
		assert.Equal(t, "secret", r.URL.Query().Get("access_key"))
		_, _ = w.Write([]byte(`{"success":true,"base":"USD","rates":{"EUR":0.9,"GHS":15.2}}`))
	}))
	defer srv.Close()

	rates, err := New(testConfig{url: srv.URL, key: "secret"}).GetRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"EUR": 0.9, "GHS": 15.2}, rates)
}

func Test_OnGetRates_ShouldFailOnUnsuccessfulAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":101,"type":"missing_access_key"}}`))
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).GetRates(context.Background(), "USD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_access_key")
}

func Test_OnGetRates_ShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(testConfig{url: srv.URL}).GetRates(context.Background(), "USD")

	assert.Error(t, err)
}

func Test_OnGetRates_ShouldTimeOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := New(testConfig{url: srv.URL, timeout: 50 * time.Millisecond}).GetRates(context.Background(), "USD")

	assert.Error(t, err)
}
