package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnvKey  = "CONFIG_FILE"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Rates     RatesConfig     `yaml:"rates"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Receipts  ReceiptsConfig  `yaml:"receipts"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML config file and overlays secrets from the environment.
// A .env file in the working directory is loaded first when present.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds a config from raw YAML, then applies defaults and environment overrides.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	s.applyEnv()
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			RatePullingDelayMinutes: 60,
			UpdateTimeoutSeconds:    30,
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			DataDir: "data",
		},
		Rates: RatesConfig{
			URL:            "https://api.exchangerate.host/latest",
			TimeoutSeconds: 10,
		},
		SMTP: SMTPConfig{
			Hostname:       "smtp.gmail.com",
			PortNum:        465,
			TimeoutSeconds: 30,
		},
		Scheduler: SchedulerConfig{
			PollSeconds: 60,
			SummaryTime: "20:00",
			LimitsTime:  "20:05",
			ReportTime:  "09:00",
			Delivery:    DeliveryDirect,
		},
		Receipts: ReceiptsConfig{
			Backend: BackendFile,
			Dir:     "receipts",
		},
		Tracing: TracingConfig{
			Service: "expense-bot",
		},
	}
}

func (s *Service) applyEnv() {
	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	overlay(&s.config.Telegram.ApiToken, "TELEGRAM_TOKEN")
	overlay(&s.config.Rates.Key, "RATES_API_KEY")
	overlay(&s.config.SMTP.User, "SMTP_USERNAME")
	overlay(&s.config.SMTP.Pswd, "SMTP_PASSWORD")
	overlay(&s.config.SMTP.Sender, "SMTP_FROM")
	overlay(&s.config.Postgres.Pswd, "POSTGRES_PASSWORD")
	overlay(&s.config.Receipts.AccessKey, "AWS_ACCESS_KEY_ID")
	overlay(&s.config.Receipts.SecretKey, "AWS_SECRET_ACCESS_KEY")
}

// Validate reports every problem at once rather than the first one.
func (s *Service) Validate() error {
	var problems []string

	if !validBackend(s.config.Storage.Backend, BackendFile, BackendPostgres, BackendMemory) {
		problems = append(problems, "storage.backend must be one of file, postgres, memory")
	}
	if s.config.Storage.Backend == BackendPostgres && s.config.Postgres.Hostname == "" {
		problems = append(problems, "postgres.host is required for the postgres backend")
	}
	if !validBackend(s.config.Receipts.Backend, BackendFile, BackendS3) {
		problems = append(problems, "receipts.backend must be one of file, s3")
	}
	if s.config.Receipts.Backend == BackendS3 && s.config.Receipts.BucketName == "" {
		problems = append(problems, "receipts.bucket is required for the s3 backend")
	}
	if !validBackend(s.config.Scheduler.Delivery, DeliveryDirect, DeliveryKafka) {
		problems = append(problems, "scheduler.report-delivery must be one of direct, kafka")
	}
	if s.config.Scheduler.Delivery == DeliveryKafka && len(s.config.Kafka.BrokerList) == 0 {
		problems = append(problems, "kafka.brokers is required for kafka report delivery")
	}
	if s.config.SMTP.TimeoutSeconds <= 0 {
		problems = append(problems, "smtp.timeout-seconds must be positive")
	}
	for name, at := range map[string]string{
		"scheduler.summary-at": s.config.Scheduler.SummaryTime,
		"scheduler.limits-at":  s.config.Scheduler.LimitsTime,
		"scheduler.report-at":  s.config.Scheduler.ReportTime,
	} {
		if _, err := ParseTimeOfDay(at); err != nil {
			problems = append(problems, name+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

func validBackend(got string, allowed ...string) bool {
	for _, a := range allowed {
		if got == a {
			return true
		}
	}
	return false
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Rates() *RatesConfig {
	return &s.config.Rates
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) SMTP() *SMTPConfig {
	return &s.config.SMTP
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Scheduler() *SchedulerConfig {
	return &s.config.Scheduler
}

func (s *Service) Receipts() *ReceiptsConfig {
	return &s.config.Receipts
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
