package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Recommend RecommendConfig
	Ranker    RankerConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StorageConfig selects and configures the provider backend
type StorageConfig struct {
	Type        string        `mapstructure:"type"` // "memory" or "postgres"
	DatabaseURL string        `mapstructure:"database_url"`
	VendorTTL   time.Duration `mapstructure:"vendor_ttl"` // vendor snapshot cache TTL
}

// RecommendConfig holds recommendation pipeline configuration
type RecommendConfig struct {
	RadiusKm           float64 `mapstructure:"radius_km"`
	PopularRadiusKm    float64 `mapstructure:"popular_radius_km"`
	DefaultLimit       int     `mapstructure:"default_limit"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// RankerConfig holds external ranking service configuration. An empty URL
// disables the remote ranker entirely.
type RankerConfig struct {
	URL              string        `mapstructure:"url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/homespice/")

	// Environment variable settings
	v.SetEnvPrefix("HOMESPICE")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Storage defaults
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.vendor_ttl", "1m")

	// Recommendation defaults
	v.SetDefault("recommend.radius_km", 20.0)
	v.SetDefault("recommend.popular_radius_km", 10.0)
	v.SetDefault("recommend.default_limit", 10)
	v.SetDefault("recommend.enable_debug_logging", false)

	// Ranker defaults: no remote ranker unless a URL is configured
	v.SetDefault("ranker.timeout", "2s")
	v.SetDefault("ranker.failure_threshold", 3)
	v.SetDefault("ranker.cooldown", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Storage.Type != "memory" && config.Storage.Type != "postgres" {
		return fmt.Errorf("storage type must be 'memory' or 'postgres', got: %s", config.Storage.Type)
	}

	if config.Storage.Type == "postgres" && config.Storage.DatabaseURL == "" {
		return fmt.Errorf("database URL is required when storage type is 'postgres' (set HOMESPICE_STORAGE_DATABASE_URL)")
	}

	if config.Recommend.RadiusKm <= 0 || config.Recommend.PopularRadiusKm <= 0 {
		return fmt.Errorf("service radii must be positive")
	}

	if config.Recommend.DefaultLimit <= 0 {
		return fmt.Errorf("default limit must be positive")
	}

	return nil
}
