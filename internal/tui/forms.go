package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("aborted by user")

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

// validateToken rejects blank tokens and tokens with inner whitespace.
func validateToken(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if strings.ContainsAny(s, " \t\n") {
		return fmt.Errorf("token must not contain whitespace")
	}
	return nil
}

// PromptToken asks for the backend bearer token with a masked input.
func PromptToken(accessible bool) (string, error) {
	var token string
	input := huh.NewInput().
		Title("Backend token").
		Description("Sent as a bearer token with every bandwidth request.").
		EchoMode(huh.EchoModePassword).
		Validate(validateToken).
		Value(&token)

	if err := runForm(accessible, huh.NewGroup(input)); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// ConfirmLogout asks before removing the stored token.
func ConfirmLogout(accessible bool) (bool, error) {
	confirm := false
	field := huh.NewConfirm().
		Title("Remove the stored backend token?").
		Affirmative("Yes, remove").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessible, huh.NewGroup(field)); err != nil {
		return false, err
	}
	return confirm, nil
}
