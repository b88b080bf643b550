package domain

import "time"

// Session is the result of a successful register or login: the signed token
// plus the account it belongs to.
type Session struct {
	Token     string
	User      User
	ExpiresAt time.Time
}
