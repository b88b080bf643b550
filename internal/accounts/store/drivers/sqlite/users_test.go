package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solara-app/accounts/internal/accounts/domain"
	"github.com/solara-app/accounts/internal/accounts/store"
	"github.com/solara-app/accounts/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// A file-backed database so concurrent connections from the pool all see
	// the same data, unlike ":memory:" which is per-connection.
	s, err := NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Phone:        "+61400000000",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHQ$aGFzaGhhc2g",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.FirstName, got.FirstName)
	require.Equal(t, u.LastName, got.LastName)
	require.Equal(t, u.Phone, got.Phone)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
}

func TestGetUserByEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("Ada@Example.COM")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "ada@example.com", got.Email, "email is stored lowercase")

	got, err = s.Users().GetUserByEmail(ctx, "ADA@EXAMPLE.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().CreateUser(ctx, testUser("ada@example.com")))

	// Different casing must still collide.
	err := s.Users().CreateUser(ctx, testUser("ADA@Example.com"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCreateUserConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Users().CreateUser(ctx, testUser("race@example.com"))
		}(i)
	}
	wg.Wait()

	var created, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		default:
			require.ErrorIs(t, err, store.ErrAlreadyExists)
			duplicates++
		}
	}
	require.Equal(t, 1, created, "exactly one registration wins")
	require.Equal(t, workers-1, duplicates)

	n, err := s.Users().CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	require.NoError(t, s.Users().UpdateProfile(ctx, u.ID, "Grace", "Hopper", "+61411111111"))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Grace", got.FirstName)
	require.Equal(t, "Hopper", got.LastName)
	require.Equal(t, "+61411111111", got.Phone)

	err = s.Users().UpdateProfile(ctx, idx.New().String(), "a", "b", "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	newHash := "$argon2id$v=19$m=19456,t=2,p=1$bmV3c2FsdA$bmV3aGFzaA"
	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, newHash))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, newHash, got.PasswordHash)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("ada@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, u))

	require.NoError(t, s.Users().DeleteUser(ctx, u.ID))

	_, err := s.Users().GetUserByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, s.Users().DeleteUser(ctx, u.ID), store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	wantErr := store.ErrAlreadyExists // any sentinel will do
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, testUser("tx@example.com")); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.ErrorIs(t, err, store.ErrNotFound, "rolled back insert must not persist")
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, testUser("tx@example.com"))
	})
	require.NoError(t, err)

	_, err = s.Users().GetUserByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
}
