package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port" env:"FITDASH_PORT"`
	Environment string `toml:"-"`

	// the remote fitness API that owns all business logic
	APIBaseURL string `toml:"api_base_url" env:"FITDASH_API_BASE_URL"`

	// logging
	LogLevel    string `toml:"log_level" env:"FITDASH_LOG_LEVEL"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// redis backed session store; in-process store is used when host is empty
	RedisHost string `toml:"redis_host" env:"FITDASH_REDIS_HOST"`
	RedisPort string `toml:"redis_port" env:"FITDASH_REDIS_PORT"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// 32 bytes, used by the CSRF form protection; a random key is
	// generated on startup when left empty
	CSRFAuthKey string `toml:"-" env:"FITDASH_CSRF_KEY"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config for the given environment, then applies
// FITDASH_* env var overrides on top of it.
func Load(ctx context.Context, env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	switch strings.ToLower(env) {
	case "prod", "production":
		cfg.Environment = "production"
	default:
		cfg.Environment = "development"
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:8080"
	}

	return cfg, nil
}
