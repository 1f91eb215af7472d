package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigurationDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Address != constants.DefaultServerAddress {
		t.Errorf("expected default address %s, got %s", constants.DefaultServerAddress, cfg.Server.Address)
	}
	if cfg.Output.Format != constants.OutputFormatPretty {
		t.Errorf("expected default output format, got %q", cfg.Output.Format)
	}
	if cfg.Auth.Endpoint != constants.DefaultIdentityEndpoint {
		t.Errorf("expected default endpoint, got %q", cfg.Auth.Endpoint)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := writeConfig(t, `server:
  address: ":9090"
  maxBodySize: "1M"
logging:
  level: debug
  format: console
output:
  format: json
auth:
  apiKey: abc123
  continueURL: https://tutor.example.com
  timeout: 5s
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Address != ":9090" || cfg.Server.MaxBodySize != "1M" {
		t.Errorf("server section not loaded: %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != constants.DefaultReadTimeout {
		t.Errorf("expected unset read timeout to keep its default, got %q", cfg.Server.ReadTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected json output, got %q", cfg.Output.Format)
	}
	if cfg.Auth.APIKey != "abc123" || cfg.Auth.ContinueURL != "https://tutor.example.com" {
		t.Errorf("auth section not loaded: %+v", cfg.Auth)
	}
	if got := cfg.AuthTimeout().String(); got != "5s" {
		t.Errorf("expected 5s auth timeout, got %s", got)
	}
}

func TestLoadConfigurationEnvironment(t *testing.T) {
	t.Setenv("ACCOUNTING_TUTOR_AUTH_APIKEY", "from-env")
	t.Setenv("ACCOUNTING_TUTOR_SERVER_ADDRESS", ":7000")

	cfg, err := LoadConfiguration(writeConfig(t, "auth:\n  apiKey: from-file\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.APIKey != "from-env" {
		t.Errorf("expected environment to override file, got %q", cfg.Auth.APIKey)
	}
	if cfg.Server.Address != ":7000" {
		t.Errorf("expected environment address, got %q", cfg.Server.Address)
	}
}

func TestLoadConfigurationInvalidYAML(t *testing.T) {
	if _, err := LoadConfiguration(writeConfig(t, "server: [unclosed")); err == nil {
		t.Fatal("expected an error for invalid YAML")
	}
}

func TestAuthTimeoutFallback(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.Timeout = "soon"
	if got := cfg.AuthTimeout().String(); got != constants.DefaultAuthTimeout {
		t.Errorf("expected fallback %s, got %s", constants.DefaultAuthTimeout, got)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Configuration)
		contains string
	}{
		{"missing api key", func(c *Configuration) {}, "auth.apiKey is empty"},
		{"bad output format", func(c *Configuration) { c.Output.Format = "xml" }, "got xml"},
		{"bad log level", func(c *Configuration) { c.Logging.Level = "loud" }, "Unknown logging level 'loud'"},
		{"bad duration", func(c *Configuration) { c.Server.WriteTimeout = "ten" }, "Invalid duration 'ten' for server.writeTimeout"},
		{"bad endpoint", func(c *Configuration) { c.Auth.Endpoint = "ftp://x" }, "is not an http(s) URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			warnings := cfg.ValidateConfiguration()
			if !strings.Contains(strings.Join(warnings, "\n"), tt.contains) {
				t.Errorf("expected a warning containing %q, got %v", tt.contains, warnings)
			}
		})
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.APIKey = "key"
	cfg.Logging.Level = "info"
	if warnings := cfg.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
