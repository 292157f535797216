// Package config handles application configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/authsmith/authsmith/pkg/types"
	"github.com/spf13/viper"
)

// Load reads configuration from files and environment variables.
func Load() (*types.Config, error) {
	// Set defaults
	setDefaults()

	// Configure viper
	viper.SetConfigName("authsmith")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.authsmith")
	viper.AddConfigPath("/etc/authsmith")

	// Environment variable support
	viper.SetEnvPrefix("AUTHSMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable - use defaults and env vars
	}

	var config types.Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults establishes default configuration values.
func setDefaults() {
	// External tools
	viper.SetDefault("git_bin", "git")
	viper.SetDefault("openssl_bin", "openssl")

	// Key generation
	viper.SetDefault("key_bits", 2048)

	// Generated server settings
	viper.SetDefault("dev_port", 3000)
	viper.SetDefault("prod_port", 80)
	viper.SetDefault("dev_issuer", "http://localhost:3000")
	viper.SetDefault("prod_issuer", "https://your.authorization.server")
	viper.SetDefault("registration", "scoped")

	// Manifest pins
	viper.SetDefault("node_engine", ">=18.0.0")
	viper.SetDefault("server_pin", "0.1.x")
}

// validate checks that the configuration is valid.
func validate(config *types.Config) error {
	if config.GitBin == "" {
		return fmt.Errorf("git_bin must not be empty")
	}

	if config.OpensslBin == "" {
		return fmt.Errorf("openssl_bin must not be empty")
	}

	if config.KeyBits < 2048 {
		return fmt.Errorf("key_bits must be at least 2048, got %d", config.KeyBits)
	}

	if config.DevPort < 1 || config.DevPort > 65535 {
		return fmt.Errorf("dev_port must be between 1 and 65535, got %d", config.DevPort)
	}

	if config.ProdPort < 1 || config.ProdPort > 65535 {
		return fmt.Errorf("prod_port must be between 1 and 65535, got %d", config.ProdPort)
	}

	switch config.Registration {
	case "scoped", "dynamic", "closed":
	default:
		return fmt.Errorf("registration must be 'scoped', 'dynamic' or 'closed', got '%s'", config.Registration)
	}

	if !strings.HasPrefix(config.DevIssuer, "http://") && !strings.HasPrefix(config.DevIssuer, "https://") {
		return fmt.Errorf("dev_issuer must be an http(s) URL, got '%s'", config.DevIssuer)
	}

	if !strings.HasPrefix(config.ProdIssuer, "http://") && !strings.HasPrefix(config.ProdIssuer, "https://") {
		return fmt.Errorf("prod_issuer must be an http(s) URL, got '%s'", config.ProdIssuer)
	}

	return nil
}

// GetConfiguredPath returns the path to the active config file.
func GetConfiguredPath() string {
	return viper.ConfigFileUsed()
}
