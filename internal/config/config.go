package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
	Toast   ToastConfig   `mapstructure:"toast"`
	Broker  BrokerConfig  `mapstructure:"broker"`
	Rate    RateConfig    `mapstructure:"rate_limit"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type SessionConfig struct {
	// IdleTimeout is the inactivity window before the idle warning shows.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	// WarningWindow is how long an unanswered warning lasts before the
	// session ends; zero waits indefinitely.
	WarningWindow time.Duration `mapstructure:"warning_window"`
}

type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration"`
}

type BrokerConfig struct {
	// Type selects the broker: "memory" (default) or "redis".
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
}

type RateConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("session.idle_timeout", "60s")
	viper.SetDefault("session.warning_window", "60s")
	viper.SetDefault("toast.duration", "4s")
	viper.SetDefault("broker.type", "memory")
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("metrics.namespace", "portal")
	viper.SetDefault("log.level", "info")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover the demo; only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validate rejects misconfiguration at load time. A zero or negative
// duration would otherwise surface as a never-firing or zero-delay timer at
// runtime.
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("session idle_timeout must be positive, got %v", c.Session.IdleTimeout)
	}
	if c.Session.WarningWindow < 0 {
		return fmt.Errorf("session warning_window must not be negative, got %v", c.Session.WarningWindow)
	}
	if c.Toast.Duration <= 0 {
		return fmt.Errorf("toast duration must be positive, got %v", c.Toast.Duration)
	}
	switch c.Broker.Type {
	case "memory":
	case "redis":
		if c.Broker.Redis.URL == "" {
			return fmt.Errorf("broker.redis.url is required for the redis broker")
		}
	default:
		return fmt.Errorf("unknown broker type %q", c.Broker.Type)
	}
	return nil
}
