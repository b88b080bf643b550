package domain

import "time"

type User struct {
	ID           string
	Email        string // stored lowercase, unique
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins the first and last names for display and token claims.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
