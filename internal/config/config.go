// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/paisawise/paisawise/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for paisawise.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Currency CurrencyConfig `yaml:"currency,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ServerConfig holds runtime parameters for the HTTP server.
type ServerConfig struct {
	Address     string          `yaml:"address,omitempty"`
	MaxBodySize string          `yaml:"maxBodySize,omitempty"` // human-friendly, e.g. "64K"
	RateLimit   RateLimitConfig `yaml:"rateLimit,omitempty"`

	bodySizeBytes int64
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled,omitempty"`
	RequestsPerMinute int  `yaml:"requestsPerMinute,omitempty"`
}

// CurrencyConfig carries INR-value overrides for the conversion table.
// Keys are currency codes, values the INR worth of one unit.
type CurrencyConfig struct {
	Rates map[string]float64 `yaml:"rates,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Address:     constants.DefaultServerAddress,
			MaxBodySize: fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: constants.DefaultRateLimitPerMinute,
			},
			bodySizeBytes: constants.DefaultMaxBodySizeBytes,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file returns the defaults without error.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := Default()
	if configPath == "" {
		return configuration, nil
	}
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return configuration, nil
}

// BodySizeBytes returns the maximum request body size in bytes.
func (c *ServerConfig) BodySizeBytes() int64 {
	if c.bodySizeBytes <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return c.bodySizeBytes
}

// SetBodySizeBytes overrides the configured body size.
func (c *ServerConfig) SetBodySizeBytes(size int64) {
	if size > 0 {
		c.bodySizeBytes = size
		c.MaxBodySize = fmt.Sprintf("%d", size)
	}
}

func (c *Configuration) normalize() error {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Server.RateLimit.Enabled && c.Server.RateLimit.RequestsPerMinute <= 0 {
		c.Server.RateLimit.RequestsPerMinute = constants.DefaultRateLimitPerMinute
	}

	sizeStr := strings.TrimSpace(c.Server.MaxBodySize)
	if sizeStr == "" {
		c.Server.bodySizeBytes = constants.DefaultMaxBodySizeBytes
		c.Server.MaxBodySize = fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxBodySizeBytes
	}
	c.Server.bodySizeBytes = bytes
	return nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown logging level %q, falling back to info", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown logging format %q, falling back to json", c.Logging.Format))
	}
	switch c.Output.Format {
	case "", constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown output format %q, falling back to %s", c.Output.Format, constants.OutputFormatPretty))
	}

	if c.Server.RateLimit.Enabled && c.Server.RateLimit.RequestsPerMinute > 10000 {
		warnings = append(warnings, fmt.Sprintf("rate limit of %d requests/minute is effectively unlimited", c.Server.RateLimit.RequestsPerMinute))
	}
	if size := c.Server.BodySizeBytes(); size > 16*1024*1024 {
		warnings = append(warnings, fmt.Sprintf("max body size of %d bytes is unusually large for calculator requests", size))
	}

	for code, rate := range c.Currency.Rates {
		trimmed := strings.TrimSpace(code)
		if len(trimmed) != 3 || !isAlpha(trimmed) {
			warnings = append(warnings, fmt.Sprintf("currency code %q does not look like an ISO 4217 code", code))
		}
		if rate <= 0 {
			warnings = append(warnings, fmt.Sprintf("currency rate for %q must be positive, got %v", code, rate))
		}
	}

	return warnings
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
