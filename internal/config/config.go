package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Store — in-memory SQLite by default; everything is lost on restart.
	DatabaseDSN string `mapstructure:"DATABASE_DSN"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	// DemoPassword is the single shared credential every roster account
	// accepts. This is a demo stand-in, not a security boundary.
	DemoPassword string `mapstructure:"DEMO_PASSWORD"`
	// LoginDelayMS reproduces the artificial pause before login resolves.
	LoginDelayMS int `mapstructure:"LOGIN_DELAY_MS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.SetDefault("JWT_SECRET", "clickcell-dev-secret")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("DEMO_PASSWORD", "123456")
	viper.SetDefault("LOGIN_DELAY_MS", 1000)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
