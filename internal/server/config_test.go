package server

import (
	"testing"
	"time"

	"github.com/iwvelando/accounting-tutor/internal/config"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(config.ServerConfig{}, "")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address, got %q", cfg.Address)
	}
	if cfg.MaxBodySize != constants.DefaultMaxBodySizeBytes {
		t.Errorf("expected default body size, got %d", cfg.MaxBodySize)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 10*time.Second {
		t.Errorf("expected default timeouts, got %s / %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.Version != "dev" {
		t.Errorf("expected dev version, got %q", cfg.Version)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	cfg, err := NewConfig(config.ServerConfig{
		Address:      "127.0.0.1:9000",
		MaxBodySize:  "2M",
		ReadTimeout:  "3s",
		WriteTimeout: "1m",
	}, " v1.2.0 ")
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Errorf("expected address override, got %q", cfg.Address)
	}
	if cfg.MaxBodySize != 2*1024*1024 {
		t.Errorf("expected 2M body size, got %d", cfg.MaxBodySize)
	}
	if cfg.ReadTimeout != 3*time.Second || cfg.WriteTimeout != time.Minute {
		t.Errorf("unexpected timeouts %s / %s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.Version != "v1.2.0" {
		t.Errorf("expected trimmed version, got %q", cfg.Version)
	}
}

func TestNewConfigInvalid(t *testing.T) {
	tests := map[string]config.ServerConfig{
		"size":          {MaxBodySize: "lots"},
		"read timeout":  {ReadTimeout: "soon"},
		"write timeout": {WriteTimeout: "-1s"},
	}

	for name, section := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewConfig(section, ""); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":      constants.DefaultMaxBodySizeBytes,
		"512":   512,
		"1K":    1024,
		"64kb":  64 * 1024,
		"2M":    2 * 1024 * 1024,
		" 3MB ": 3 * 1024 * 1024,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) error = %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, want %d", input, got, expected)
		}
	}

	for _, input := range []string{"M", "12Q", "abc"} {
		if _, err := ParseSize(input); err == nil {
			t.Errorf("ParseSize(%q) expected error", input)
		}
	}
}
