package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/bwdash/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a backend token is stored",
		Long: `Show whether a backend token is stored in the keychain.

Example:
  bwdash auth status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := tokenStore().GetToken(auth.BackendAccount)
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in (token %s)\n", auth.BackendAccount, mask(token))
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", auth.BackendAccount)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", auth.BackendAccount, err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}

// mask keeps the last four characters of long tokens.
func mask(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
