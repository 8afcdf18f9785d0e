package backend

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"nathanbeddoewebdev/bwdash/internal/config"
	"nathanbeddoewebdev/bwdash/internal/logging"
	"nathanbeddoewebdev/bwdash/internal/mockbackend"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewCommand returns the "backend" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Run a local bandwidth backend",
		Long: `Run a local backend that serves deterministic synthetic bandwidth over
the same POST /bandwidth contract as the real service.

Useful for demos and for trying the dashboard without access to
production data.`,
	}

	cmd.AddCommand(ServeCommand())

	return cmd
}

// ServeCommand returns the "backend serve" command.
func ServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve synthetic bandwidth until interrupted",
		Long: `Serve synthetic bandwidth until interrupted.

Examples:
  bwdash backend serve
  bwdash backend serve --addr 127.0.0.1:8080 --step 1m
  bwdash backend serve --token secret`,
		Args:         cobra.NoArgs,
		RunE:         runServe,
		SilenceUsage: true,
	}

	cmd.Flags().String("addr", ":3000", "Listen address")
	cmd.Flags().Duration("step", mockbackend.DefaultStep, "Sample interval")
	cmd.Flags().String("token", "", "Require this bearer token on every request")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	step, _ := cmd.Flags().GetDuration("step")
	token, _ := cmd.Flags().GetString("token")

	if step < time.Second {
		return fmt.Errorf("--step must be at least 1s")
	}

	logger, err := serveLogger(cmd)
	if err != nil {
		return err
	}

	opts := []mockbackend.HandlerOption{mockbackend.WithLogger(logger)}
	if token = strings.TrimSpace(token); token != "" {
		opts = append(opts, mockbackend.WithToken(token))
	}
	handler := mockbackend.NewHandler(mockbackend.NewGenerator(step), opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready := make(chan string, 1)
	announced := make(chan struct{})
	go func() {
		defer close(announced)
		if bound, ok := <-ready; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Serving synthetic bandwidth on http://%s (step %s). Press Ctrl+C to stop.\n", bound, step)
		}
	}()

	err = mockbackend.Serve(ctx, addr, handler, logger, ready)
	close(ready)
	<-announced
	return err
}

// serveLogger logs requests to stderr at info level unless the config or
// --log-level asks for something else.
func serveLogger(cmd *cobra.Command) (*log.Logger, error) {
	level := "info"
	if cfg, err := config.Load(); err == nil && cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}
	return logging.New(cmd.ErrOrStderr(), level)
}
