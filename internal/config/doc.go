// Package config loads, normalizes, and validates caskmap configuration.
//
// The configuration file is optional: every default reproduces the pipeline's
// documented behavior, so a run without a config file is fully conformant.
// When present, the TOML file can point at an alternate brew binary, bound the
// catalog query with a timeout, and tune log output.
//
// Always obtain settings through Load so downstream code receives sanitized
// values and clear validation errors.
package config
