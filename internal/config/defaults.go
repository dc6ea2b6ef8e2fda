package config

const (
	defaultBrewBinary       = "brew"
	defaultBrewQueryTimeout = 0
	defaultOutputIndent     = 2
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

// Default returns a Config populated with repository defaults. The defaults
// reproduce the pipeline's documented behavior exactly: system brew binary,
// unbounded catalog query, two-space JSON indent.
func Default() Config {
	return Config{
		Brew: Brew{
			Binary:              defaultBrewBinary,
			QueryTimeoutSeconds: defaultBrewQueryTimeout,
		},
		Output: Output{
			Indent: defaultOutputIndent,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
