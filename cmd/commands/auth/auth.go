package auth

import (
	"os"

	"nathanbeddoewebdev/bwdash/internal/services/auth"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tokenStore is the keychain used for the backend token. Tests replace it.
var tokenStore = auth.DefaultStore

// isTerminal reports whether stdin and stdout are both interactive.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the backend token",
		Long: `Manage the optional bearer token sent to the bandwidth backend.

The token is stored in the local keychain, never in the config file.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
