package config

import (
	"time"
)

type AppConfig struct {
	RatePullingDelayMinutes int64  `yaml:"rate-pulling-delay-minutes"`
	UpdateTimeoutSeconds    int64  `yaml:"update-timeout-seconds"`
	MetricsAddress          string `yaml:"metrics-addr"`
	TimeZone                string `yaml:"timezone"`
}

func (s *AppConfig) PullingDelayMinutes() int64 {
	return s.RatePullingDelayMinutes
}

func (s *AppConfig) UpdateTimeout() time.Duration {
	return time.Duration(s.UpdateTimeoutSeconds) * time.Second
}

func (s *AppConfig) MetricsAddr() string {
	return s.MetricsAddress
}

// Location falls back to the process local zone when the name is empty or unknown.
func (s *AppConfig) Location() *time.Location {
	if s.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
