package config

import (
	"github.com/kbukum/guardkit/authz"
	"github.com/kbukum/guardkit/logger"
	"github.com/kbukum/guardkit/validation"
)

// Visitor preset names accepted by ProxyConfig.Preset.
const (
	PresetDefaults       = "defaults"
	PresetSkipValueTypes = "skip-value-types"
)

// ProxyConfig controls how the proxy factory traverses targets.
type ProxyConfig struct {
	// Preset selects the visitor chain: "defaults" or "skip-value-types".
	Preset string `yaml:"preset" mapstructure:"preset" validate:"omitempty,oneof=defaults skip-value-types"`
	// GuardReturns lists "Type.Method" patterns whose return values are
	// recursively proxied by the return-object advisor.
	GuardReturns []string `yaml:"guard_returns" mapstructure:"guard_returns"`
}

// ApplyDefaults applies default values to proxy configuration.
func (c *ProxyConfig) ApplyDefaults() {
	if c.Preset == "" {
		c.Preset = PresetDefaults
	}
}

// PolicyConfig carries the authorization policy consumed by authz.
type PolicyConfig struct {
	// Permissions maps subjects to permission patterns (MapChecker form).
	Permissions map[string][]string `yaml:"permissions" mapstructure:"permissions"`
	// Rules bind method patterns to required permissions.
	Rules []authz.Rule `yaml:"rules" mapstructure:"rules" validate:"dive"`
}

// Config is the root guardkit configuration.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Proxy   ProxyConfig   `yaml:"proxy" mapstructure:"proxy"`
	Policy  PolicyConfig  `yaml:"policy" mapstructure:"policy"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Proxy.ApplyDefaults()
}

// Validate validates the whole configuration, combining struct tags with
// per-section checks.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}
