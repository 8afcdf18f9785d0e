package auth

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/bwdash/internal/services/auth"
	"nathanbeddoewebdev/bwdash/internal/tui"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored backend token",
		Long: `Remove the backend token from the keychain.

In a terminal you are asked to confirm unless --yes is given.

Examples:
  bwdash auth logout
  bwdash auth logout --yes`,
		Args:         cobra.NoArgs,
		RunE:         runLogout,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes && isTerminal() {
		confirmed, err := tui.ConfirmLogout(os.Getenv("ACCESSIBLE") != "")
		if err != nil && !errors.Is(err, tui.ErrAborted) {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.ErrOrStderr(), "Logout cancelled.")
			return nil
		}
	}

	err := tokenStore().DeleteToken(auth.BackendAccount)
	switch {
	case errors.Is(err, auth.ErrTokenNotFound):
		fmt.Fprintln(cmd.OutOrStdout(), "No backend token stored.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to remove token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed backend token.")
	return nil
}
