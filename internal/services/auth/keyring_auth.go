package auth

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore keeps tokens in the OS keychain (Keychain, Secret Service
// or Windows Credential Manager) under one service name.
type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(account string, token string) error {
	err := keyring.Set(k.serviceName, NormalizeAccount(account), token)
	if errors.Is(err, keyring.ErrSetDataTooBig) {
		return fmt.Errorf("token is too long for the system keychain (%d bytes)", len(token))
	}
	return err
}

// GetToken maps a missing entry to ErrTokenNotFound.
func (k *KeyringStore) GetToken(account string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeAccount(account))
	switch {
	case err == nil:
		return token, nil
	case errors.Is(err, keyring.ErrNotFound):
		return "", ErrTokenNotFound
	default:
		return "", err
	}
}

func (k *KeyringStore) DeleteToken(account string) error {
	err := keyring.Delete(k.serviceName, NormalizeAccount(account))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
