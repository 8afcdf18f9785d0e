package bandwidth

import (
	"context"
	"errors"
	"os"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/orchestrator"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errOrchestratorClosed = errors.New("fetch cancelled")

// fetchWindow runs one fetch cycle for w and waits for its outcome.
func fetchWindow(ctx context.Context, o *orchestrator.Orchestrator, w domain.Window) (domain.Result, error) {
	seq, ok := o.Request(w)
	if !ok {
		return domain.Result{}, domain.ErrInvalidWindow
	}

	for {
		select {
		case u, open := <-o.Updates():
			if !open {
				return domain.Result{}, errOrchestratorClosed
			}
			if u.Seq != seq {
				continue
			}
			if u.State == orchestrator.Failed {
				return domain.Result{}, u.Err
			}
			return *u.Result, nil
		case <-ctx.Done():
			return domain.Result{}, ctx.Err()
		}
	}
}

// withSpinner runs action behind a spinner when stderr is a terminal.
func withSpinner(cmd *cobra.Command, title string, action func() error) error {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(cmd.ErrOrStderr()).
		Action(func() { actionErr = action() }).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
