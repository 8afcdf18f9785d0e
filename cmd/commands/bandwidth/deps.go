package bandwidth

import (
	"fmt"
	"io"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/client"
	"nathanbeddoewebdev/bwdash/internal/config"
	"nathanbeddoewebdev/bwdash/internal/fetchlog"
	"nathanbeddoewebdev/bwdash/internal/logging"
	"nathanbeddoewebdev/bwdash/internal/orchestrator"
	"nathanbeddoewebdev/bwdash/internal/retry"
	"nathanbeddoewebdev/bwdash/internal/services/auth"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// tokenStore is the keychain used for the backend token. Tests replace it.
var tokenStore = auth.DefaultStore

// loadSettings resolves config with command-line overrides applied.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	s := cfg.Effective()

	if f := cmd.Flag("backend-url"); f != nil && f.Changed {
		s.BackendURL = strings.TrimRight(f.Value.String(), "/")
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		s.LogLevel = f.Value.String()
	}
	return s, nil
}

// newLogger writes to w at the configured level.
func newLogger(w io.Writer, s config.Settings) (*log.Logger, error) {
	return logging.New(w, s.LogLevel)
}

// newClient builds the HTTP client, attaching the stored token if any.
// A keychain failure is logged and the request proceeds unauthenticated.
func newClient(s config.Settings, logger *log.Logger) *client.Client {
	opts := []client.Option{
		client.WithTimeout(s.Timeout),
		client.WithLogger(logger),
		client.WithRetry(retryConfig(s)),
	}

	token, err := auth.LookupToken(tokenStore(), auth.BackendAccount)
	switch {
	case err != nil:
		logger.Warn("could not read backend token from keychain", "err", err)
	case token != "":
		opts = append(opts, client.WithToken(token))
	}

	return client.New(s.BackendURL, opts...)
}

func retryConfig(s config.Settings) retry.Config {
	rc := retry.DefaultConfig()
	rc.MaxAttempts = s.RetryAttempts
	return rc
}

// newOrchestrator wires the client to the fetch history. The returned
// cleanup closes the orchestrator and then the history.
func newOrchestrator(c *client.Client, s config.Settings, logger *log.Logger) (*orchestrator.Orchestrator, func()) {
	opts := []orchestrator.Option{
		orchestrator.WithTimeout(s.Timeout),
		orchestrator.WithLogger(logger),
	}

	repo, err := fetchlog.Open()
	if err != nil {
		logger.Warn("fetch history unavailable", "err", err)
	} else {
		opts = append(opts, orchestrator.WithRecorder(fetchlog.Recorder{Repo: repo}))
	}

	o := orchestrator.New(c, opts...)
	return o, func() {
		o.Close()
		if repo != nil {
			repo.Close()
		}
	}
}
