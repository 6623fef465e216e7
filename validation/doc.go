// Package validation provides struct validation for guardkit configuration.
//
// It uses struct tags (via the validator library) so configuration sections
// declare their own constraints:
//
//	type ProxyConfig struct {
//	    Preset string `validate:"oneof=defaults skip-value-types"`
//	}
//	err := validation.Validate(cfg)
//
// Failures are reported as errors.AppError values with per-field details.
package validation
