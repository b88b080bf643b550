package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "accounts-test"

func testSecret(t *testing.T) []byte {
	t.Helper()
	return []byte("0123456789abcdef0123456789abcdef") // 32 bytes
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret(t), testIssuer)

	now := time.Now().UTC()
	claims := NewSessionClaims("user-123", "a@x.com", "Ada Lovelace", time.Hour, testIssuer, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, "Ada Lovelace", got.Name)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestNewSignerRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256([]byte("too-short"))
	require.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret(t), testIssuer)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := NewSessionClaims("user-123", "a@x.com", "Ada", time.Hour, testIssuer, issued)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret(t), testIssuer)

	claims := NewSessionClaims("user-123", "a@x.com", "Ada", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Flip one character of the signature segment.
	i := strings.LastIndex(token, ".") + 1
	flipped := byte('A')
	if token[i] == 'A' {
		flipped = 'B'
	}
	tampered := token[:i] + string(flipped) + token[i+1:]

	_, err = verifier.Verify(tampered)
	require.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	verifier := NewVerifierHS256([]byte("ffffffffffffffffffffffffffffffff"), testIssuer)

	claims := NewSessionClaims("user-123", "a@x.com", "Ada", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	verifier := NewVerifierHS256(testSecret(t), "some-other-issuer")

	claims := NewSessionClaims("user-123", "a@x.com", "Ada", time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier := NewVerifierHS256(testSecret(t), testIssuer)

	for _, in := range []string{"", "abc", "a.b.c", "...."} {
		_, err := verifier.Verify(in)
		require.Error(t, err, "input %q", in)
	}
}
