package cache

import (
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-bot/internal/logger"
)

const (
	rateKeyPrefix = "rate:"
	floatFormat   = 'g'
	floatBits     = 64
)

// MemcacheClient keeps the last rates that were fetched successfully, so a restarted
// process still has something better than nothing when the rate service is down.
type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(code string) string {
	return rateKeyPrefix + code
}

func (mc *MemcacheClient) SaveRates(rates map[string]float64) error {
	logger.Debug("cache rates", zap.Int("count", len(rates)))
	for code, rate := range rates {
		err := mc.client.Set(&memcache.Item{
			Key:   formatKey(code),
			Value: []byte(strconv.FormatFloat(rate, floatFormat, -1, floatBits)),
		})
		if err != nil {
			return errors.Wrap(err, "cache rate "+code)
		}
	}
	return nil
}

func (mc *MemcacheClient) LoadRate(code string) (float64, error) {
	item, err := mc.client.Get(formatKey(code))
	if err != nil {
		return 0, errors.Wrap(err, "get cached rate "+code)
	}
	rate, err := strconv.ParseFloat(string(item.Value), floatBits)
	if err != nil {
		return 0, errors.Wrap(err, "parse cached rate "+code)
	}
	return rate, nil
}
