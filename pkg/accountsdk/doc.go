// Package accountsdk is the Go client for the Solara accounts service.
//
// The SDKClient handles unauthenticated operations (register, login, health
// probes) and returns a Session on successful authentication. The Session
// holds the signed token plus the account profile, attaches the bearer token
// to every request it makes, and forces a local logout when the server
// reports the token as invalid.
package accountsdk
