package server

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address        string   `mapstructure:"address"`
	DatabasePath   string   `mapstructure:"databasePath"`
	LogLevel       string   `mapstructure:"logLevel"`
	LogFormat      string   `mapstructure:"logFormat"`
	AllowedOrigins []string `mapstructure:"allowedOrigins"`

	// AuditTrailYears truncates the audit trail in API responses to the
	// most recent N years; 0 returns the full trail.
	AuditTrailYears int `mapstructure:"auditTrailYears"`
}

// LoadConfig reads the server configuration via viper: an optional YAML
// file merged with ZUSGO_* environment overrides, falling back to
// defaults when neither is present.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("address", ":8080")
	v.SetDefault("databasePath", "zusgo.db")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "json")
	v.SetDefault("allowedOrigins", []string{"*"})
	v.SetDefault("auditTrailYears", 0)

	v.SetEnvPrefix("ZUSGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal server config: %w", err)
	}
	return &cfg, nil
}
