package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	DatabaseURL         string
	Provider            string
	QueryTimeoutSeconds int
	MaxOpenConns        int
	MaxIdleConns        int
	TelemetryEnabled    bool
}

// LoadConfig loads configuration from various sources
func LoadConfig() (*Config, error) {
	// Find home directory
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	// Set config file paths
	viper.SetConfigName(".rowset-go")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "rowset-go"))

	// Set environment variable prefix
	viper.SetEnvPrefix("ROWSET_GO")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("provider", "postgresql")
	viper.SetDefault("query_timeout_seconds", 30)
	viper.SetDefault("max_open_conns", 25)
	viper.SetDefault("max_idle_conns", 5)
	viper.SetDefault("telemetry_enabled", false)

	// Try to read config file (ignore if not found)
	_ = viper.ReadInConfig()

	// Load .env file if it exists
	if _, err := AppFs.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			// Don't fail if .env can't be loaded
		}
	}

	// Load .env.local if it exists (higher priority)
	if _, err := AppFs.Stat(".env.local"); err == nil {
		if err := godotenv.Overload(".env.local"); err != nil {
			// Don't fail if .env.local can't be loaded
		}
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		Provider:            viper.GetString("provider"),
		QueryTimeoutSeconds: viper.GetInt("query_timeout_seconds"),
		MaxOpenConns:        viper.GetInt("max_open_conns"),
		MaxIdleConns:        viper.GetInt("max_idle_conns"),
		TelemetryEnabled:    viper.GetBool("telemetry_enabled"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = viper.GetString("database_url")
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config) error {
	viper.Set("provider", cfg.Provider)
	viper.Set("query_timeout_seconds", cfg.QueryTimeoutSeconds)
	viper.Set("max_open_conns", cfg.MaxOpenConns)
	viper.Set("max_idle_conns", cfg.MaxIdleConns)
	viper.Set("telemetry_enabled", cfg.TelemetryEnabled)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".config", "rowset-go")
	if err := AppFs.MkdirAll(configPath, 0755); err != nil {
		return err
	}

	configFile := filepath.Join(configPath, ".rowset-go.yaml")
	return viper.WriteConfigAs(configFile)
}
