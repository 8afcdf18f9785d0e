// Package auth stores the optional backend bearer token in the OS keychain.
package auth

import (
	"errors"

	"nathanbeddoewebdev/bwdash/internal/util"
)

const ServiceName = "bwdash"

// BackendAccount is the keychain account holding the backend token.
const BackendAccount = "backend"

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(account string, token string) error
	GetToken(account string) (string, error)
	DeleteToken(account string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeAccount normalizes an account name for consistent key lookup.
func NormalizeAccount(account string) string {
	return util.NormalizeKey(account)
}

// LookupToken returns the stored token for account, or "" when none is
// stored. Other keychain errors are returned as-is.
func LookupToken(store Store, account string) (string, error) {
	token, err := store.GetToken(account)
	if errors.Is(err, ErrTokenNotFound) {
		return "", nil
	}
	return token, err
}
