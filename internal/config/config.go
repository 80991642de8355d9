package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env            string        `yaml:"env"             env:"APP_ENV"`
	ListenAddr     string        `yaml:"listen_addr"     env:"LISTEN_ADDR"`
	DatabaseURL    string        `yaml:"database_url"    env:"DATABASE_URL"`
	StoreDriver    string        `yaml:"store_driver"    env:"STORE_DRIVER"`
	AuthSecret     string        `yaml:"auth_secret"     env:"AUTH_SECRET"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
	// Comma-separated addresses copied on every notification.
	NotificationRecipients string `yaml:"notification_recipients" env:"NOTIFICATION_RECIPIENTS"`

	LLM  LLMConfig  `yaml:"llm"  envPrefix:"OPENAI_"`
	Mail MailConfig `yaml:"mail"`
	Log  LogConfig  `yaml:"log"  envPrefix:"LOG_"`
}

// LLMConfig configures the optional enrichment provider. An empty APIKey
// disables it.
type LLMConfig struct {
	APIKey  string        `yaml:"api_key"  env:"API_KEY"`
	BaseURL string        `yaml:"base_url" env:"BASE_URL"`
	Model   string        `yaml:"model"    env:"MODEL"`
	Timeout time.Duration `yaml:"timeout"  env:"TIMEOUT"`
	RPM     int           `yaml:"rpm"      env:"RPM"`
}

// MailConfig configures outbound mail. SMTP is used when Host, User and Pass
// are all set; otherwise messages go to the log.
type MailConfig struct {
	Host   string `yaml:"smtp_host"   env:"SMTP_HOST"`
	Port   int    `yaml:"smtp_port"   env:"SMTP_PORT"`
	User   string `yaml:"smtp_user"   env:"SMTP_USER"`
	Pass   string `yaml:"smtp_pass"   env:"SMTP_PASS"`
	Secure bool   `yaml:"smtp_secure" env:"SMTP_SECURE"`
	From   string `yaml:"from"        env:"MAIL_FROM"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file"  env:"FILE"`
}

// Load reads CONFIG_FILE (YAML) if set, then lets environment variables
// override it, then fills defaults. A non-nil error with a usable Config is a
// warning; callers decide whether it is fatal.
func Load() (Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()

	if cfg.StoreDriver == StorePostgres && cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "development"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.StoreDriver == "" {
		c.StoreDriver = StorePostgres
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 60 * time.Second
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.RPM == 0 {
		c.LLM.RPM = 60
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = "PolicyMind <no-reply@policymind.test>"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
