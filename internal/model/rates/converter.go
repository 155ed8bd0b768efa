package rates

//go:generate minimock -i ratesProvider,lastKnownStore -o ./mock/ -s _mock.go

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"max.ks1230/expense-bot/internal/entity/currency"
	"max.ks1230/expense-bot/internal/logger"
	"max.ks1230/expense-bot/internal/model/customerr"
)

const refreshKey = "rates"

type ratesProvider interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
}

type lastKnownStore interface {
	SaveRates(rates map[string]float64) error
	LoadRate(code string) (float64, error)
}

type Converter struct {
	provider  ratesProvider
	cache     *Cache
	lastKnown lastKnownStore
	group     singleflight.Group
}

// NewConverter wires a converter; lastKnown may be nil.
func NewConverter(provider ratesProvider, cache *Cache, lastKnown lastKnownStore) *Converter {
	return &Converter{
		provider:  provider,
		cache:     cache,
		lastKnown: lastKnown,
	}
}

// RateOf returns units of code per one USD. A failed fetch falls back to a stale
// cached value, then to the last-known store; there is no parity fallback.
func (c *Converter) RateOf(ctx context.Context, code string) (float64, error) {
	code, ok := currency.NormalizeCode(code)
	if !ok {
		return 0, customerr.NewUserInputError("currency code must be 3 letters")
	}
	if code == currency.Base {
		return 1, nil
	}

	cached, fresh, found := c.cache.Get(code)
	if found && fresh {
		return cached, nil
	}

	err := c.Refresh(ctx)
	if err == nil {
		if rate, _, ok := c.cache.Get(code); ok {
			return rate, nil
		}
		return 0, errors.Wrapf(customerr.ErrRateUnavailable, "unknown currency %s", code)
	}

	logger.Warn("using fallback rate", zap.String("code", code), zap.Error(err))
	if found {
		return cached, nil
	}
	if c.lastKnown != nil {
		rate, lkErr := c.lastKnown.LoadRate(code)
		if lkErr == nil && rate > 0 {
			return rate, nil
		}
	}
	return 0, errors.Wrapf(customerr.ErrRateUnavailable, "rate %s", code)
}

// Convert turns amount in from into to, going through USD.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	rateFrom, err := c.RateOf(ctx, from)
	if err != nil {
		return 0, err
	}
	rateTo, err := c.RateOf(ctx, to)
	if err != nil {
		return 0, err
	}
	return amount / rateFrom * rateTo, nil
}

// Refresh fetches the whole USD table once, however many callers ask at the same time.
func (c *Converter) Refresh(ctx context.Context) error {
	_, err, _ := c.group.Do(refreshKey, func() (interface{}, error) {
		return nil, c.refresh(ctx)
	})
	return err
}

func (c *Converter) refresh(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "refreshRates")
	defer span.Finish()

	fetched, err := c.provider.GetRates(ctx, currency.Base)
	if err != nil {
		ext.Error.Set(span, true)
		return customerr.NewNetworkError("fetch rates", err)
	}

	c.cache.Store(fetched)
	if c.lastKnown != nil {
		if err = c.lastKnown.SaveRates(fetched); err != nil {
			logger.Error("cannot persist last known rates", zap.Error(err))
		}
	}
	return nil
}
