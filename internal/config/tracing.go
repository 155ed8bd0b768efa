package config

type TracingConfig struct {
	Service   string `yaml:"service"`
	AgentAddr string `yaml:"agent-addr"`
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.AgentAddr
}
