package exchange

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	baseParam      = "base"
	accessKeyParam = "access_key"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

type config interface {
	Endpoint() string
	ApiKey() string
	Timeout() time.Duration
}

type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

type ratesResponse struct {
	Base    string             `json:"base"`
	Rates   map[string]float64 `json:"rates"`
	Success *bool              `json:"success"`
	Error   json.RawMessage    `json:"error"`
}

func New(cfg config) *Client {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:    cfg.Endpoint(),
		apiKey: cfg.ApiKey(),
		http:   &http.Client{Timeout: timeout},
	}
}

// GetRates returns how many units of each currency one unit of base buys.
func (c *Client) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exchange.GetRates")
	defer span.Finish()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build rates request")
	}

	q := req.URL.Query()
	q.Add(baseParam, base)
	if c.apiKey != "" {
		q.Add(accessKeyParam, c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request rates")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read rates response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("rates service answered %d", res.StatusCode)
	}
	logger.Debug("new response from rates service", zap.ByteString("body", body))

	rates := ratesResponse{}
	err = json.Unmarshal(body, &rates)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling response")
	}

	if rates.Success != nil && !*rates.Success {
		return nil, errors.Errorf("error from rates service: %s", string(rates.Error))
	}
	if len(rates.Rates) == 0 {
		return nil, errors.New("rates service returned no rates")
	}

	return rates.Rates, nil
}
