package config

import (
	"fmt"
	"time"
)

const (
	DeliveryDirect = "direct"
	DeliveryKafka  = "kafka"
)

type SchedulerConfig struct {
	PollSeconds int64  `yaml:"poll-interval-seconds"`
	SummaryTime string `yaml:"summary-at"`
	LimitsTime  string `yaml:"limits-at"`
	ReportTime  string `yaml:"report-at"`
	Delivery    string `yaml:"report-delivery"`
}

func (s *SchedulerConfig) PollInterval() time.Duration {
	return time.Duration(s.PollSeconds) * time.Second
}

func (s *SchedulerConfig) SummaryAt() time.Duration {
	d, _ := ParseTimeOfDay(s.SummaryTime)
	return d
}

func (s *SchedulerConfig) LimitsAt() time.Duration {
	d, _ := ParseTimeOfDay(s.LimitsTime)
	return d
}

func (s *SchedulerConfig) ReportAt() time.Duration {
	d, _ := ParseTimeOfDay(s.ReportTime)
	return d
}

func (s *SchedulerConfig) ReportDelivery() string {
	return s.Delivery
}

// ParseTimeOfDay turns "HH:MM" into an offset from midnight.
func ParseTimeOfDay(v string) (time.Duration, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("time of day %q must be HH:MM", v)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
