package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Network identifies which chain the SDK talks to.
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// Config holds all SDK configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Broadcast BroadcastConfig `mapstructure:"broadcast"`
	Events    EventsConfig    `mapstructure:"events"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Network        string        `mapstructure:"network"` // mainnet, testnet
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type BroadcastConfig struct {
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type EventsConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Stream       string        `mapstructure:"stream"` // cursor namespace
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Validate rejects configurations the SDK cannot run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Network != NetworkMainnet && c.API.Network != NetworkTestnet {
		return fmt.Errorf("api.network must be %q or %q, got %q",
			NetworkMainnet, NetworkTestnet, c.API.Network)
	}
	if c.Broadcast.RetryAttempts < 0 {
		return fmt.Errorf("broadcast.retry_attempts must be >= 0")
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DGP_ (Digiplay).
// Nested keys use underscore: DGP_API_BASE_URL, DGP_BROADCAST_RETRY_DELAY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("api.base_url", "https://api.digibyte.io")
	v.SetDefault("api.network", NetworkMainnet)
	v.SetDefault("api.request_timeout", "10s")
	v.SetDefault("broadcast.retry_attempts", 3)
	v.SetDefault("broadcast.retry_delay", "3s")
	v.SetDefault("events.poll_interval", "10s")
	v.SetDefault("events.stream", "default")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: DGP_API_BASE_URL -> api.base_url
	v.SetEnvPrefix("DGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
