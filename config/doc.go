// Package config provides file-based configuration for guardkit.
//
// A Config carries three sections: logging (see the logger package), proxy
// (visitor preset and guarded-return method patterns), and policy (subject
// permissions and method rules consumed by the authz package). Configs are
// loaded from YAML via viper, with optional .env loading via godotenv and
// GUARDKIT_* environment overrides, mirroring the usual service setup:
//
//	cfg, err := config.Load("guardkit.yml")
//	factory, err := guard.FromConfig(cfg)
//
// Validation combines struct tags (validation package) with per-section
// checks, and always fails fast — a config is either fully applied or not
// at all.
package config
