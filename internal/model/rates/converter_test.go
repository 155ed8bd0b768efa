package rates

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-bot/internal/model/customerr"
	"max.ks1230/expense-bot/internal/model/rates/mock"
)

var usdTable = map[string]float64{"EUR": 0.8, "GHS": 15, "GBP": 0.75}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func Test_OnRateOf_ShouldFetchOnceAndCacheForever(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	provider.GetRatesMock.
		Inspect(func(_ context.Context, base string) {
			assert.Equal(m, "USD", base)
		}).
		Return(usdTable, nil)

	conv := NewConverter(provider, NewCache(0, clock.Now), nil)

	rate, err := conv.RateOf(context.Background(), "eur")
	require.NoError(t, err)
	assert.Equal(t, 0.8, rate)

	clock.Advance(365 * 24 * time.Hour)
	rate, err = conv.RateOf(context.Background(), "GHS")
	require.NoError(t, err)
	assert.Equal(t, 15.0, rate)
	assert.Equal(t, uint64(1), provider.GetRatesAfterCounter())
}

func Test_OnRateOf_ShouldNotFetchForBaseCurrency(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)

	conv := NewConverter(provider, NewCache(0, nil), nil)
	rate, err := conv.RateOf(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)
}

// sequence answers successive GetRates calls with the given tables in order.
func sequence(t *testing.T, answers ...func() (map[string]float64, error)) func(context.Context, string) (map[string]float64, error) {
	call := 0
	return func(_ context.Context, base string) (map[string]float64, error) {
		assert.Equal(t, "USD", base)
		require.Less(t, call, len(answers), "unexpected GetRates call")
		answer := answers[call]
		call++
		return answer()
	}
}

func table(rates map[string]float64) func() (map[string]float64, error) {
	return func() (map[string]float64, error) { return rates, nil }
}

func failure(err error) func() (map[string]float64, error) {
	return func() (map[string]float64, error) { return nil, err }
}

func Test_OnExpiredRate_ShouldRefetch(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	provider.GetRatesMock.Set(sequence(t, table(usdTable), table(map[string]float64{"EUR": 0.9})))

	conv := NewConverter(provider, NewCache(time.Hour, clock.Now), nil)

	rate, err := conv.RateOf(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.8, rate)

	clock.Advance(30 * time.Minute)
	rate, err = conv.RateOf(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.8, rate)

	clock.Advance(time.Hour)
	rate, err = conv.RateOf(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, 0.9, rate)
	assert.Equal(t, uint64(2), provider.GetRatesAfterCounter())
}

func Test_OnFetchFailure_ShouldReuseStaleRate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	provider.GetRatesMock.Set(sequence(t, table(usdTable), failure(errors.New("boom"))))

	conv := NewConverter(provider, NewCache(time.Minute, clock.Now), nil)
	_, err := conv.RateOf(context.Background(), "EUR")
	require.NoError(t, err)

	clock.Advance(time.Hour)
	rate, err := conv.RateOf(context.Background(), "EUR")

	require.NoError(t, err)
	assert.Equal(t, 0.8, rate)
}

func Test_OnFetchFailure_ShouldUseLastKnownStore(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	lastKnown := mock.NewLastKnownStoreMock(m)

	provider.GetRatesMock.Return(nil, errors.New("boom"))
	lastKnown.LoadRateMock.Expect("EUR").Return(0.85, nil)

	conv := NewConverter(provider, NewCache(0, nil), lastKnown)
	rate, err := conv.RateOf(context.Background(), "EUR")

	require.NoError(t, err)
	assert.Equal(t, 0.85, rate)
}

func Test_OnFetchFailure_ShouldFailWithoutAnyRate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	lastKnown := mock.NewLastKnownStoreMock(m)

	provider.GetRatesMock.Return(nil, errors.New("boom"))
	lastKnown.LoadRateMock.Expect("EUR").Return(0.0, errors.New("cache miss"))

	conv := NewConverter(provider, NewCache(0, nil), lastKnown)
	_, err := conv.RateOf(context.Background(), "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, customerr.ErrRateUnavailable))
}

func Test_OnSuccessfulFetch_ShouldPersistLastKnown(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	lastKnown := mock.NewLastKnownStoreMock(m)

	provider.GetRatesMock.Return(usdTable, nil)
	lastKnown.SaveRatesMock.Expect(usdTable).Return(nil)

	conv := NewConverter(provider, NewCache(0, nil), lastKnown)
	require.NoError(t, conv.Refresh(context.Background()))
}

func Test_OnUnknownCurrency_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)

	provider.GetRatesMock.Return(usdTable, nil)

	conv := NewConverter(provider, NewCache(0, nil), nil)
	_, err := conv.RateOf(context.Background(), "XYZ")

	assert.True(t, errors.Is(err, customerr.ErrRateUnavailable))

	_, err = conv.RateOf(context.Background(), "EURO")
	assert.True(t, customerr.IsUserInput(err))
}

func Test_OnConvertBackAndForth_ShouldReturnOriginalAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	provider.GetRatesMock.Return(usdTable, nil)

	conv := NewConverter(provider, NewCache(0, nil), nil)
	ctx := context.Background()

	for _, amount := range []float64{1, 12.34, 999.99} {
		there, err := conv.Convert(ctx, amount, "EUR", "GHS")
		require.NoError(t, err)
		back, err := conv.Convert(ctx, there, "GHS", "EUR")
		require.NoError(t, err)
		assert.InDelta(t, amount, back, 1e-9)
	}

	usd, err := conv.Convert(ctx, 8, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 10, usd, 1e-9)
	assert.Equal(t, uint64(1), provider.GetRatesAfterCounter())
}

type countingRefresher struct {
	calls chan struct{}
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls <- struct{}{}
	return nil
}

type delayConfig int64

func (d delayConfig) PullingDelayMinutes() int64 { return int64(d) }

func Test_OnPull_ShouldRefreshImmediatelyAndStopOnCancel(t *testing.T) {
	ref := &countingRefresher{calls: make(chan struct{}, 1)}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewPuller(ref, delayConfig(60)).Pull(ctx)
		close(done)
	}()

	select {
	case <-ref.calls:
	case <-time.After(time.Second):
		t.Fatal("puller did not refresh on start")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("puller did not stop")
	}
}
