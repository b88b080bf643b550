package accountsdk

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated session: the signed token plus the profile of
// the account it belongs to. It is safe for concurrent use.
//
// Sessions are stateless on the server side, so Logout only clears the local
// state. When any request comes back with an invalid_token error the session
// logs itself out before returning the error, so callers can treat
// LoggedIn() == false as "redirect to the login page".
type Session struct {
	client *SDKClient

	mu        sync.RWMutex
	token     string
	profile   Profile
	hasUser   bool
	expiresAt time.Time
}

// newSession creates a session from a register or login response.
func newSession(client *SDKClient, authResp *AuthResponse) *Session {
	return &Session{
		client:    client,
		token:     authResp.Token,
		profile:   authResp.Profile,
		hasUser:   true,
		expiresAt: time.Now().Add(time.Duration(authResp.ExpiresIn) * time.Second),
	}
}

// Token returns the current session token, or "" after logout.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether the session still holds a token.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// CurrentUser returns the cached profile. The second return is false when
// the session is logged out or the profile hasn't been fetched yet.
func (s *Session) CurrentUser() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || !s.hasUser {
		return Profile{}, false
	}
	return s.profile, true
}

// ExpiresAt returns when the token expires. Zero when the session was
// rebuilt from a bare token.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Logout clears the token and cached profile. It is idempotent and purely
// local: the server keeps no session state to revoke.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = Profile{}
	s.hasUser = false
	s.expiresAt = time.Time{}
}

// Me fetches the authenticated account's profile from the server and
// refreshes the cached copy. If the server rejects the token the session is
// logged out before the error is returned.
func (s *Session) Me(ctx context.Context) (Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil, nil)
	if err != nil {
		return Profile{}, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		if IsInvalidToken(err) {
			s.Logout()
		}
		return Profile{}, err
	}

	s.mu.Lock()
	s.profile = profile
	s.hasUser = true
	s.mu.Unlock()

	return profile, nil
}
