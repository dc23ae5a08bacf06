// Package config reads tool configuration using Viper.
//
// Sources, in precedence order from lowest to highest: built-in defaults,
// the user config at ~/.vatplace/config.toml, a vatplace.toml found by
// walking up from the working directory, and VATPLACE_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/veridia/vatplace/errors"
)

// Config is the top-level tool configuration.
type Config struct {
	Registry RegistryConfig `mapstructure:"registry"`
	Log      LogConfig      `mapstructure:"log"`
}

// RegistryConfig configures the remote VAT registry clients.
type RegistryConfig struct {
	// ViesEndpoint overrides the EU VIES checkVat service URL.
	ViesEndpoint string `mapstructure:"vies_endpoint"`
	// BrregEndpoint overrides the Norwegian Brønnøysund registry URL.
	BrregEndpoint string `mapstructure:"brreg_endpoint"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// LogConfig configures logging output.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// Timeout returns the registry timeout as a duration.
func (r RegistryConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the configuration, caching it for subsequent calls.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing the
// usual search order.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("VATPLACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("registry.vies_endpoint", "")
	v.SetDefault("registry.brreg_endpoint", "")
	v.SetDefault("registry.timeout_seconds", 30)
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbose", false)
}

// findProjectConfig searches for vatplace.toml by walking up the directory
// tree, returning the first hit or "".
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "vatplace.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order, user
// config before project config, so later files win.
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	configPaths := []string{
		filepath.Join(homeDir, ".vatplace", "config.toml"),
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}
		for key, value := range tempViper.AllSettings() {
			v.Set(key, value)
		}
	}
}
