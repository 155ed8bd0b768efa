package config

import "time"

type RatesConfig struct {
	URL            string `yaml:"url"`
	Key            string `yaml:"api-key"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
	TTLMinutes     int64  `yaml:"ttl-minutes"`
}

func (r *RatesConfig) Endpoint() string {
	return r.URL
}

func (r *RatesConfig) ApiKey() string {
	return r.Key
}

func (r *RatesConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// TTL of zero keeps fetched rates for the life of the process.
func (r *RatesConfig) TTL() time.Duration {
	return time.Duration(r.TTLMinutes) * time.Minute
}
