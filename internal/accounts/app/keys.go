package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solara-app/accounts/pkg/cryptox"
	"github.com/solara-app/accounts/pkg/jwtx"
)

// loadOrCreateSecret reads the token signing secret from the configured
// file, generating one on first boot. The file holds the only copy: losing
// it invalidates every outstanding session, which is acceptable because
// clients simply log in again.
func loadOrCreateSecret(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing secret: %w", err)
		}
		if err := os.WriteFile(path, []byte(secret), 0600); err != nil {
			return nil, fmt.Errorf("failed to write signing secret: %w", err)
		}
		return []byte(secret), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signing secret: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) < jwtx.MinSecretLength {
		return nil, fmt.Errorf("signing secret in %s is too short (%d bytes, need %d)",
			path, len(raw), jwtx.MinSecretLength)
	}
	return raw, nil
}
