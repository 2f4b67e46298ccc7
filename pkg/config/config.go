package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "shopdesk"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Ledger   LedgerConfig
	Seed     SeedConfig
	Currency CurrencyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Ledger.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPDESK_APP_ENV" default:"development"`
	Port         string `envconfig:"SHOPDESK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	CORSOrigins []string `envconfig:"SHOPDESK_CORS_ORIGINS" default:"http://localhost:3000"`
}

type LedgerConfig struct {
	DefaultPageSize int `envconfig:"SHOPDESK_LEDGER_DEFAULT_PAGE_SIZE" default:"25"`
	MaxPageSize     int `envconfig:"SHOPDESK_LEDGER_MAX_PAGE_SIZE" default:"100"`
}

func (l LedgerConfig) validate() error {
	if l.DefaultPageSize < 1 {
		return fmt.Errorf("ledger default page size must be positive, got %d", l.DefaultPageSize)
	}
	if l.MaxPageSize < l.DefaultPageSize {
		return fmt.Errorf("ledger max page size %d below default %d", l.MaxPageSize, l.DefaultPageSize)
	}
	return nil
}

type SeedConfig struct {
	DemoData bool `envconfig:"SHOPDESK_SEED_DEMO_DATA" default:"true"`
}

type CurrencyConfig struct {
	Display string `envconfig:"SHOPDESK_DISPLAY_CURRENCY" default:"GHS"`
}
