package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/services/auth"
	"nathanbeddoewebdev/bwdash/internal/tui"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the backend token",
		Long: `Store the backend bearer token in the local keychain.

Without --token the token is prompted for in a terminal, or read from
the first line of stdin otherwise.

Examples:
  bwdash auth login
  bwdash auth login --token "$BW_TOKEN"
  echo "$BW_TOKEN" | bwdash auth login`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "Backend token (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	token = strings.TrimSpace(token)

	if token == "" {
		var err error
		token, err = readToken(cmd)
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := tokenStore().SetToken(auth.BackendAccount, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Saved backend token.")
	return nil
}

func readToken(cmd *cobra.Command) (string, error) {
	if isTerminal() {
		return tui.PromptToken(os.Getenv("ACCESSIBLE") != "")
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
