package config

import "strings"

func (c *Config) normalize() {
	c.normalizeBrew()
	c.normalizeLogging()
}

func (c *Config) normalizeBrew() {
	c.Brew.Binary = strings.TrimSpace(c.Brew.Binary)
	if c.Brew.Binary == "" {
		c.Brew.Binary = defaultBrewBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
