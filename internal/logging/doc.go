// Package logging builds the slog loggers used across caskmap.
//
// Two output formats are supported: a human-oriented console format with
// optional color, and line-delimited JSON. Logs always go to stderr so that
// stdout stays free for command output and pipeline data.
package logging
