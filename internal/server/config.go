package server

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/accounting-tutor/internal/config"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address      string
	MaxBodySize  int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string
}

// NewConfig converts the server section of the application configuration into
// runtime parameters, applying defaults to anything unset.
func NewConfig(section config.ServerConfig, version string) (*Config, error) {
	cfg := &Config{
		Address:     strings.TrimSpace(section.Address),
		MaxBodySize: constants.DefaultMaxBodySizeBytes,
		Version:     strings.TrimSpace(version),
	}
	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	size, err := ParseSize(section.MaxBodySize)
	if err != nil {
		return nil, err
	}
	if size > 0 {
		cfg.MaxBodySize = size
	}

	if cfg.ReadTimeout, err = parseTimeout(section.ReadTimeout, constants.DefaultReadTimeout); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.WriteTimeout, err = parseTimeout(section.WriteTimeout, constants.DefaultWriteTimeout); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	return cfg, nil
}

func parseTimeout(value, fallback string) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", value)
	}
	return d, nil
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
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
