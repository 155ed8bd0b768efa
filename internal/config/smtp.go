package config

import "time"

type SMTPConfig struct {
	Hostname       string `yaml:"host"`
	PortNum        int    `yaml:"port"`
	User           string `yaml:"username"`
	Pswd           string `yaml:"password"`
	Sender         string `yaml:"from"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (s *SMTPConfig) Host() string {
	return s.Hostname
}

func (s *SMTPConfig) Port() int {
	return s.PortNum
}

func (s *SMTPConfig) Username() string {
	return s.User
}

func (s *SMTPConfig) Password() string {
	return s.Pswd
}

// From defaults to the login name, which is what most relays require anyway.
func (s *SMTPConfig) From() string {
	if s.Sender != "" {
		return s.Sender
	}
	return s.User
}

// Timeout bounds one whole delivery: dial, greeting, auth and data.
func (s *SMTPConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}
