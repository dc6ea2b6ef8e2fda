package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBrew(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBrew() error {
	if c.Brew.QueryTimeoutSeconds < 0 {
		return errors.New("brew.query_timeout must be zero or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Indent < 0 {
		return errors.New("output.indent must be zero or positive")
	}
	if c.Output.Indent > 16 {
		return errors.New("output.indent must be 16 or less")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
