package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	// No config file and no env vars: the only hard requirement is the
	// Squarespace key, so Load must refuse.
	_, err := Load()
	if err == nil {
		t.Fatal("Load() without an API key should fail")
	}
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	if got := v.GetString("server.port"); got != "8080" {
		t.Errorf("server.port = %s, want 8080", got)
	}
	if got := v.GetString("server.environment"); got != "development" {
		t.Errorf("server.environment = %s, want development", got)
	}
	if got := v.GetString("squarespace.base_url"); got != "https://api.squarespace.com" {
		t.Errorf("squarespace.base_url = %s", got)
	}
	if got := v.GetInt("squarespace.order_limit"); got != 100 {
		t.Errorf("squarespace.order_limit = %d, want 100", got)
	}
	if got := v.GetDuration("catalog.cache_ttl"); got != time.Hour {
		t.Errorf("catalog.cache_ttl = %v, want 1h", got)
	}
	if got := v.GetInt("ratelimit.per_ip"); got != 60 {
		t.Errorf("ratelimit.per_ip = %d, want 60", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Squarespace: SquarespaceConfig{APIKey: "key", OrderLimit: 100},
			Catalog:     CatalogConfig{CSVPath: "items.csv"},
		}
	}

	t.Run("accepts a complete config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() = %v, want nil", err)
		}
	})

	t.Run("rejects missing API key", func(t *testing.T) {
		cfg := valid()
		cfg.Squarespace.APIKey = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error")
		}
	})

	t.Run("rejects missing catalog path", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.CSVPath = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error")
		}
	})

	t.Run("rejects non-positive order limit", func(t *testing.T) {
		cfg := valid()
		cfg.Squarespace.OrderLimit = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error")
		}
	})
}
