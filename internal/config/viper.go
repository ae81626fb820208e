// Package config: Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Folders struct {
		Input  string `mapstructure:"input" yaml:"input"`
		Output string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"folders" yaml:"folders"`

	Salesperson struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"salesperson" yaml:"salesperson"`

	Alias struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"alias" yaml:"alias"`

	Watch struct {
		IntervalSeconds int `mapstructure:"interval_seconds" yaml:"interval_seconds"`
		TimeoutSeconds  int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"watch" yaml:"watch"`

	Server struct {
		Addr          string `mapstructure:"addr" yaml:"addr"`
		MaxUploadMB   int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
		TempDirectory string `mapstructure:"temp_directory" yaml:"temp_directory"`
	} `mapstructure:"server" yaml:"server"`
}

// WatchInterval returns the watcher poll interval as a duration.
func (c *Config) WatchInterval() time.Duration {
	return time.Duration(c.Watch.IntervalSeconds) * time.Second
}

// WatchTimeout returns the per-run subprocess timeout as a duration.
func (c *Config) WatchTimeout() time.Duration {
	return time.Duration(c.Watch.TimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then SALESCONV_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.salesconv")
	v.AddConfigPath(".salesconv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SALESCONV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars; a broken config file
			// should not take the converter down.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("folders.input", "to_be_processed")
	v.SetDefault("folders.output", "processed")

	v.SetDefault("salesperson.file", "Sales Person List.csv")
	v.SetDefault("alias.file", "")

	v.SetDefault("watch.interval_seconds", 2)
	v.SetDefault("watch.timeout_seconds", 60)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_upload_mb", 25)
	v.SetDefault("server.temp_directory", "")
}

func validateConfig(c *Config) error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Watch.IntervalSeconds <= 0 {
		return fmt.Errorf("watch interval must be positive, got %d", c.Watch.IntervalSeconds)
	}
	if c.Watch.TimeoutSeconds <= 0 {
		return fmt.Errorf("watch timeout must be positive, got %d", c.Watch.TimeoutSeconds)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Get returns the global configuration, initializing it on first use.
func Get() *Config {
	configOnce.Do(func() {
		var err error
		globalConfig, err = InitializeConfig()
		if err != nil {
			Logger.Fatalf("Failed to initialize configuration: %v", err)
		}
	})
	return globalConfig
}
