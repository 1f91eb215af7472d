// Package config defines the data structures related to configuration and
// includes functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/validation"
)

// Configuration holds all configuration for accounting-tutor.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Auth    AuthConfig    `yaml:"auth,omitempty"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Address      string `yaml:"address,omitempty"`
	MaxBodySize  string `yaml:"maxBodySize,omitempty"` // e.g. 64K, 1M
	ReadTimeout  string `yaml:"readTimeout,omitempty"`
	WriteTimeout string `yaml:"writeTimeout,omitempty"`
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

// AuthConfig holds identity provider options.
type AuthConfig struct {
	APIKey      string `yaml:"apiKey,omitempty"`
	Endpoint    string `yaml:"endpoint,omitempty"`
	ContinueURL string `yaml:"continueURL,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Configuration {
	return Configuration{
		Server: ServerConfig{
			Address:      constants.DefaultServerAddress,
			MaxBodySize:  fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
			ReadTimeout:  constants.DefaultReadTimeout,
			WriteTimeout: constants.DefaultWriteTimeout,
		},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
		Auth: AuthConfig{
			Endpoint: constants.DefaultIdentityEndpoint,
			Timeout:  constants.DefaultAuthTimeout,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults. Any key can be
// overridden from the environment, e.g. ACCOUNTING_TUTOR_AUTH_APIKEY.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, Defaults())

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &configuration, nil
}

// setDefaults registers every key so that AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d Configuration) {
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.maxBodySize", d.Server.MaxBodySize)
	v.SetDefault("server.readTimeout", d.Server.ReadTimeout)
	v.SetDefault("server.writeTimeout", d.Server.WriteTimeout)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", d.Logging.OutputFile)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("auth.apiKey", d.Auth.APIKey)
	v.SetDefault("auth.endpoint", d.Auth.Endpoint)
	v.SetDefault("auth.continueURL", d.Auth.ContinueURL)
	v.SetDefault("auth.timeout", d.Auth.Timeout)
}

// AuthTimeout returns the parsed identity provider timeout, falling back to
// the default when unset or invalid.
func (c *Configuration) AuthTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Auth.Timeout); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(constants.DefaultAuthTimeout)
	return d
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown logging level '%s'", c.Logging.Level))
	}

	for name, value := range map[string]string{
		"server.readTimeout":  c.Server.ReadTimeout,
		"server.writeTimeout": c.Server.WriteTimeout,
		"auth.timeout":        c.Auth.Timeout,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("Invalid duration '%s' for %s, the default will be used", value, name))
		}
	}

	if strings.TrimSpace(c.Auth.APIKey) == "" {
		warnings = append(warnings, "auth.apiKey is empty - sign-in requests will be rejected by the identity provider")
	}
	if c.Auth.Endpoint != "" && !strings.HasPrefix(c.Auth.Endpoint, "https://") && !strings.HasPrefix(c.Auth.Endpoint, "http://") {
		warnings = append(warnings, fmt.Sprintf("auth.endpoint '%s' is not an http(s) URL", c.Auth.Endpoint))
	}

	return warnings
}
