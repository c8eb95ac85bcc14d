package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"twitch-app-api/twitchapi"

	"github.com/spf13/viper"
)

// Config holds all configuration for the command line tool.
// Values are loaded by Viper from a config file and/or environment variables.
type Config struct {
	BaseURL        string        `mapstructure:"TWITCH_API_BASE_URL"`
	UserAgent      string        `mapstructure:"USERAGENT"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogFile        string        `mapstructure:"LOG_FILE"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

const (
	defaultLogFile  = "twitch-app-api.log"
	defaultLogLevel = "info"
)

var envKeys = []string{
	"TWITCH_API_BASE_URL",
	"USERAGENT",
	"REQUEST_TIMEOUT",
	"LOG_FILE",
	"LOG_LEVEL",
}

// LoadConfig reads configuration from a .env file in path and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	vipErr := v.ReadInConfig()
	if _, ok := vipErr.(viper.ConfigFileNotFoundError); ok {
		slog.Debug("Config file (.env) not found, relying on environment variables.")
	} else if vipErr != nil {
		return Config{}, fmt.Errorf("fatal error config file: %w", vipErr)
	}

	v.AutomaticEnv()
	for _, key := range envKeys {
		// Unmarshal only sees keys viper knows about; AutomaticEnv alone does not register them.
		if err := v.BindEnv(key); err != nil {
			slog.Warn("Unable to bind env var", "key", key, "error", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct, %w", err)
	}

	processConfigDefaults(&config)

	if err := validate(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// processConfigDefaults fills in every unset value.
func processConfigDefaults(config *Config) {
	if config.BaseURL == "" {
		config.BaseURL = twitchapi.DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = twitchapi.DefaultUserAgent
	}
	if config.LogFile == "" {
		config.LogFile = defaultLogFile
	}
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
}

func validate(config *Config) error {
	if config.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must not be negative, got %s", config.RequestTimeout)
	}
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", config.LogLevel)
	}
	return nil
}

// ClientOptions translates the configuration into twitchapi client options.
func (c Config) ClientOptions() []twitchapi.Option {
	opts := []twitchapi.Option{
		twitchapi.WithBaseURL(c.BaseURL),
		twitchapi.WithUserAgent(c.UserAgent),
	}
	if c.RequestTimeout > 0 {
		opts = append(opts, twitchapi.WithTimeout(c.RequestTimeout))
	}
	return opts
}
