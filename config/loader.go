package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/guardkit/errors"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// GUARDKIT_PROXY_PRESET overrides proxy.preset.
const envPrefix = "GUARDKIT"

// searchPaths are the locations Load probes when no explicit path is given.
var searchPaths = []string{
	"./guardkit.yml",
	"./guardkit.yaml",
	"./config/guardkit.yml",
}

// envFiles are .env locations probed before reading configuration.
var envFiles = []string{
	".env.guardkit",
	".env",
}

// Load reads a Config from path. An empty path searches the standard
// locations; a missing file is not an error and yields the defaults, but an
// unreadable or invalid file fails fast.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	if path == "" {
		path = findConfigFile()
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InvalidInput("config", "unable to read config file").WithCause(err).WithDetail("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InvalidInput("config", "unable to parse config file").WithCause(err).WithDetail("path", path)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads the first .env file that exists. Missing files are fine.
func loadEnvFiles() {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// findConfigFile searches the standard locations for a config file.
func findConfigFile() string {
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
