package cryptox

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Argon2id parameters. These follow the current OWASP minimums for the
// memory-constrained configuration.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath points the package at the pepper file. Must be called before
// the first hash or verify.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
}

// GetPepper returns the process-wide pepper, loading it from disk on first
// use. Concurrent first callers serialize on the load so exactly one value
// is generated and persisted.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper
	}

	p, err := loadOrGeneratePepper()
	if err != nil {
		slog.Error("failed to load or generate pepper", slog.Any("err", err))
		os.Exit(1)
	}
	pepper = p

	return pepper
}

// loadOrGeneratePepper reads the pepper file, creating it with a random value
// on first boot.
func loadOrGeneratePepper() (string, error) {
	pepperFile = filepath.Clean(pepperFile)
	if err := os.MkdirAll(filepath.Dir(pepperFile), 0750); err != nil {
		return "", err
	}

	if _, err := os.Stat(pepperFile); os.IsNotExist(err) {
		p, err := GenerateToken(keyLength)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(pepperFile, []byte(p), 0600); err != nil {
			return "", err
		}
		return p, nil
	}

	raw, err := os.ReadFile(pepperFile)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ReloadPepper re-reads the pepper file, e.g. after a backup restore.
func ReloadPepper() error {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	p, err := loadOrGeneratePepper()
	if err != nil {
		return err
	}
	pepper = p
	return nil
}
