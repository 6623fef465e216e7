package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/guardkit/authz"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Proxy.Preset != PresetDefaults {
		t.Errorf("expected preset %q, got %q", PresetDefaults, cfg.Proxy.Preset)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults applied, got level %q", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad preset", func(c *Config) { c.Proxy.Preset = "everything" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"rule missing permission", func(c *Config) {
			c.Policy.Rules = []authz.Rule{{Method: "Account.*"}}
		}, true},
		{"valid rule", func(c *Config) {
			c.Policy.Rules = []authz.Rule{{Method: "Account.*", Permission: "account:write"}}
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{}
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardkit.yml")
	content := `
logging:
  level: debug
  format: json
proxy:
  preset: skip-value-types
  guard_returns:
    - "Account.*"
policy:
  permissions:
    admin: ["*:*"]
    teller: ["account:read"]
  rules:
    - method: "Account.Withdraw"
      permission: "account:write"
    - method: "Account.Balance"
      permission: "account:read"
      phase: after
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging section not loaded: %+v", cfg.Logging)
	}
	if cfg.Proxy.Preset != PresetSkipValueTypes {
		t.Errorf("expected skip-value-types preset, got %q", cfg.Proxy.Preset)
	}
	if len(cfg.Proxy.GuardReturns) != 1 || cfg.Proxy.GuardReturns[0] != "Account.*" {
		t.Errorf("guard_returns not loaded: %v", cfg.Proxy.GuardReturns)
	}
	if len(cfg.Policy.Permissions["admin"]) != 1 {
		t.Errorf("permissions not loaded: %v", cfg.Policy.Permissions)
	}
	if len(cfg.Policy.Rules) != 2 || cfg.Policy.Rules[1].Phase != authz.PhaseAfter {
		t.Errorf("rules not loaded: %+v", cfg.Policy.Rules)
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardkit.yml")
	if err := os.WriteFile(path, []byte("proxy:\n  preset: bogus\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation failure for bogus preset")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	// No guardkit.yml in the working directory of tests.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file should use defaults: %v", err)
	}
	if cfg.Proxy.Preset != PresetDefaults {
		t.Errorf("expected default preset, got %q", cfg.Proxy.Preset)
	}
}

func TestLoadUnreadableFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for explicitly named missing file")
	}
}
