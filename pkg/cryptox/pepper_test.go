package cryptox

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPepperConcurrentFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	SetPepperPath(path)
	t.Cleanup(func() {
		SetPepperPath(filepath.Join(os.TempDir(), "accounts-test-pepper"))
		require.NoError(t, ReloadPepper())
	})

	pepperMu.Lock()
	pepper = ""
	pepperMu.Unlock()

	const workers = 32
	results := make([]string, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetPepper()
		}(i)
	}
	wg.Wait()

	// Exactly one pepper must win, and it must be the one on disk so a
	// restart verifies the same hashes.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	for i, p := range results {
		require.Equal(t, string(raw), p, "goroutine %d", i)
	}
}

func TestReloadPepperPicksUpNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pepper")
	SetPepperPath(path)
	t.Cleanup(func() {
		SetPepperPath(filepath.Join(os.TempDir(), "accounts-test-pepper"))
		require.NoError(t, ReloadPepper())
	})

	require.NoError(t, ReloadPepper())
	first := GetPepper()

	require.NoError(t, os.WriteFile(path, []byte("restored-pepper-value"), 0600))
	require.NoError(t, ReloadPepper())

	require.Equal(t, "restored-pepper-value", GetPepper())
	require.NotEqual(t, first, GetPepper())
}
