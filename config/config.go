package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Squarespace SquarespaceConfig
	Catalog     CatalogConfig
	Matching    MatchingConfig
	Store       StoreConfig
	RateLimit   RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SquarespaceConfig holds Squarespace Commerce API configuration
type SquarespaceConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	OrderLimit int    `mapstructure:"order_limit"`
}

// CatalogConfig holds QuickBooks item list configuration
type CatalogConfig struct {
	CSVPath  string        `mapstructure:"csv_path"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// MatchingConfig holds matcher tuning
type MatchingConfig struct {
	DebugLogging bool `mapstructure:"debug_logging"`
}

// StoreConfig holds run persistence configuration
type StoreConfig struct {
	SQLitePath string `mapstructure:"sqlite_path"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/tanneryrow/")

	v.SetEnvPrefix("TANNERYROW")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("squarespace.base_url", "https://api.squarespace.com")
	v.SetDefault("squarespace.order_limit", 100)

	v.SetDefault("catalog.csv_path", "config/qb_items.csv")
	v.SetDefault("catalog.cache_ttl", "1h")

	v.SetDefault("matching.debug_logging", false)

	v.SetDefault("store.sqlite_path", "data/mappings.db")

	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Squarespace.APIKey == "" {
		return fmt.Errorf("Squarespace API key is required (set TANNERYROW_SQUARESPACE_API_KEY)")
	}

	if config.Catalog.CSVPath == "" {
		return fmt.Errorf("catalog CSV path is required")
	}

	if config.Squarespace.OrderLimit <= 0 {
		return fmt.Errorf("order limit must be positive, got: %d", config.Squarespace.OrderLimit)
	}

	return nil
}
