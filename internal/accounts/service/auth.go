package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/solara-app/accounts/internal/accounts/domain"
	"github.com/solara-app/accounts/internal/accounts/store"
	"github.com/solara-app/accounts/pkg/cryptox"
	"github.com/solara-app/accounts/pkg/idx"
	"github.com/solara-app/accounts/pkg/jwtx"
	"github.com/solara-app/accounts/pkg/slogx"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxNameLength     = 100
	MaxEmailLength    = 254
)

// phoneRe is deliberately loose: digits with optional leading + and common
// separators. Real phone validation belongs to a verification flow, not here.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,19}$`)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TokenTTL time.Duration
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Register validates the sign-up fields, hashes the password and creates the
// account. Email uniqueness is enforced by the store in the same statement as
// the insert, so two concurrent registrations for one address cannot both
// succeed. On success the new user is logged straight in.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (*domain.Session, error) {
	l := slogx.FromContext(ctx)

	email, err := normalizeEmail(p.Email)
	if err != nil {
		return nil, err
	}
	if err := validateRegistration(p); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    strings.TrimSpace(p.FirstName),
		LastName:     strings.TrimSpace(p.LastName),
		Phone:        strings.TrimSpace(p.Phone),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration rejected, email already taken", slog.String("email", email))
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	l.Info("account created", slog.String("user_id", user.ID))
	return s.issueSession(user, now)
}

// Login checks the email/password pair and issues a session token. Unknown
// email and wrong password both return ErrInvalidCredentials, and the
// unknown-email path still runs an argon2 verification so the two cases take
// comparable time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	l := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = cryptox.VerifyPassword(password, decoyHash())
			l.Info("login failed", slog.String("email", email))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	l.Info("login succeeded", slog.String("user_id", user.ID))
	return s.issueSession(user, time.Now().UTC())
}

// Verify checks a session token's signature, issuer and expiry, then loads
// the account it refers to. Every failure collapses to ErrInvalidToken so a
// caller can't distinguish a forged token from an expired one or a deleted
// account.
func (s *AuthService) Verify(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *AuthService) issueSession(user domain.User, now time.Time) (*domain.Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, user.FullName(), ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     token,
		User:      user,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", invalidField("email", "required")
	}
	if len(email) > MaxEmailLength {
		return "", invalidField("email", "too long")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalidField("email", "not a valid email address")
	}
	return email, nil
}

func validateRegistration(p RegisterParams) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return invalidField("first_name", "required")
	}
	if len(p.FirstName) > MaxNameLength {
		return invalidField("first_name", "too long")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return invalidField("last_name", "required")
	}
	if len(p.LastName) > MaxNameLength {
		return invalidField("last_name", "too long")
	}
	if phone := strings.TrimSpace(p.Phone); phone != "" && !phoneRe.MatchString(phone) {
		return invalidField("phone", "not a valid phone number")
	}
	if len(p.Password) < MinPasswordLength {
		return invalidField("password", "must be at least 8 characters")
	}
	if len(p.Password) > MaxPasswordLength {
		return invalidField("password", "too long")
	}
	return nil
}

var (
	decoyOnce sync.Once
	decoy     string
)

// decoyHash is a throwaway argon2 hash verified against when the email is
// unknown, keeping the failure path's timing close to a real verification.
func decoyHash() string {
	decoyOnce.Do(func() {
		pw, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			pw = "decoy-password-fallback"
		}
		decoy, _ = cryptox.HashPassword(pw)
	})
	return decoy
}
