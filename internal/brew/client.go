package brew

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/scylladb/go-set/strset"

	"caskmap/internal/logging"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Output(ctx context.Context, binary string, args []string) ([]byte, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for the fallback path.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps Homebrew CLI interactions.
type Client struct {
	binary       string
	queryTimeout time.Duration
	exec         Executor
	logger       *slog.Logger
}

// New constructs a Homebrew catalog client. A zero timeout leaves each
// catalog query unbounded.
func New(binary string, queryTimeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("brew binary required")
	}
	client := &Client{
		binary:       binary,
		queryTimeout: time.Duration(queryTimeoutSeconds) * time.Second,
		exec:         commandExecutor{},
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Binary returns the configured brew executable.
func (c *Client) Binary() string {
	return c.binary
}

// Catalog returns the union of brew's formula and cask name lists.
//
// This is the pipeline's fail-open boundary: a missing binary, non-zero exit,
// or unreadable output on either query contributes an empty list instead of
// an error, leaving every application to fall through to the unresolved
// bucket. The degradation is logged but never propagated.
func (c *Client) Catalog(ctx context.Context) *strset.Set {
	catalog := strset.New()
	for _, listing := range []string{"formulae", "casks"} {
		names, err := c.list(ctx, listing)
		if err != nil {
			c.logger.Warn("brew catalog query failed, continuing with empty list",
				logging.String("listing", listing),
				logging.String("binary", c.binary),
				logging.Error(err),
			)
			continue
		}
		catalog.Add(names...)
	}
	return catalog
}

func (c *Client) list(ctx context.Context, listing string) ([]string, error) {
	if c.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.queryTimeout)
		defer cancel()
	}

	output, err := c.exec.Output(ctx, c.binary, []string{listing})
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Detect reports where the binary resolves on PATH. Unlike Catalog this does
// return an error; it exists for diagnostics, not for the data path.
func Detect(binary string) (string, error) {
	return exec.LookPath(binary)
}

type commandExecutor struct{}

func (commandExecutor) Output(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.Output()
}
