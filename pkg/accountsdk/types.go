package accountsdk

import "time"

// RegisterRequest is the JSON body for POST /v1/auth/register.
type RegisterRequest struct {
	// FirstName is the user's given name
	FirstName string `json:"first_name"`

	// LastName is the user's family name
	LastName string `json:"last_name"`

	// Email is the login email address (case-insensitive)
	Email string `json:"email"`

	// Phone is an optional contact number
	Phone string `json:"phone,omitempty"`

	// Password is the plaintext password (sent over TLS, stored hashed)
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /v1/auth/login.
type LoginRequest struct {
	// Email is the login email address (case-insensitive)
	Email string `json:"email"`

	// Password is the plaintext password
	Password string `json:"password"`
}

// Profile is the public view of an account. It never includes the password
// hash or any other credential material.
type Profile struct {
	// ID is the unique identifier for the account (ULID)
	ID string `json:"id"`

	// FirstName is the user's given name
	FirstName string `json:"first_name"`

	// LastName is the user's family name
	LastName string `json:"last_name"`

	// Email is the login email, always lowercase
	Email string `json:"email"`

	// Phone is the optional contact number
	Phone string `json:"phone,omitempty"`

	// CreatedAt is when the account was registered
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by both register and login. The profile fields are
// flattened into the top-level object.
type AuthResponse struct {
	// Token is the signed session token
	Token string `json:"token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds
	ExpiresIn int64 `json:"expires_in"`

	Profile
}

// ErrorResponse is the standard error body for all non-2xx responses.
type ErrorResponse struct {
	// Error is the machine-readable error code
	Error string `json:"error"`

	// ErrorDescription is a human-readable description
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
