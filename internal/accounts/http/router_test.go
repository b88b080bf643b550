package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/solara-app/accounts/pkg/accountsdk"
	"github.com/solara-app/accounts/pkg/cryptox"
	"github.com/solara-app/accounts/pkg/httpx"
	"github.com/solara-app/accounts/pkg/jwtx"
	"github.com/solara-app/accounts/pkg/slogx"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "accounts-http-test-pepper"))
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	router := NewRouter(
		"test",
		true,
		st,
		httpx.CORSConfig{AllowedOrigins: []string{"*"}},
		slogx.New(slogx.Config{Service: "accounts-test", Env: "test", Level: "error", Format: "text"}),
	)
	router.AuthService = &service.AuthService{
		Store:    st,
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(secret, "accounts-test"),
		Issuer:   "accounts-test",
		TokenTTL: time.Hour,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerBody() accountsdk.RegisterRequest {
	return accountsdk.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+61400000000",
		Password:  "correct horse battery",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	auth := decodeBody[accountsdk.AuthResponse](t, resp)
	require.NotEmpty(t, auth.Token)
	require.Equal(t, "Bearer", auth.TokenType)
	require.Positive(t, auth.ExpiresIn)
	require.Equal(t, "ada@example.com", auth.Email)
	require.Equal(t, "Ada", auth.FirstName)
	require.NotEmpty(t, auth.ID)
}

func TestRegisterEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	body := registerBody()
	body.Password = "short"
	resp := postJSON(t, srv.URL+"/v1/auth/register", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errResp := decodeBody[accountsdk.ErrorResponse](t, resp)
	require.Equal(t, accountsdk.ErrorCodeValidation, errResp.Error)
	require.Contains(t, errResp.ErrorDescription, "password")
}

func TestRegisterEndpointMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/v1/auth/register", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errResp := decodeBody[accountsdk.ErrorResponse](t, resp)
	require.Equal(t, accountsdk.ErrorCodeValidation, errResp.Error)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	errResp := decodeBody[accountsdk.ErrorResponse](t, resp)
	require.Equal(t, accountsdk.ErrorCodeDuplicateAccount, errResp.Error)
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/v1/auth/login", accountsdk.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	auth := decodeBody[accountsdk.AuthResponse](t, resp)
	require.NotEmpty(t, auth.Token)
	require.Equal(t, "ada@example.com", auth.Email)
}

func TestLoginEndpointIndistinguishableFailures(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	wrongPassword := postJSON(t, srv.URL+"/v1/auth/login", accountsdk.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong password!",
	})
	unknownEmail := postJSON(t, srv.URL+"/v1/auth/login", accountsdk.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct horse battery",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	require.Contains(t, wrongPassword.Header.Get("WWW-Authenticate"), `Bearer error="invalid_credentials"`)
	require.Equal(t, wrongPassword.Header.Get("WWW-Authenticate"), unknownEmail.Header.Get("WWW-Authenticate"))

	bodyA, err := io.ReadAll(wrongPassword.Body)
	require.NoError(t, err)
	wrongPassword.Body.Close()
	bodyB, err := io.ReadAll(unknownEmail.Body)
	require.NoError(t, err)
	unknownEmail.Body.Close()

	require.JSONEq(t, string(bodyA), string(bodyB), "failure responses must be byte-identical")
}

func TestMeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	auth := decodeBody[accountsdk.AuthResponse](t, resp)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+auth.Token)

	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	profile := decodeBody[accountsdk.Profile](t, meResp)
	require.Equal(t, auth.ID, profile.ID)
	require.Equal(t, "ada@example.com", profile.Email)
	require.Equal(t, "Ada", profile.FirstName)
	require.Equal(t, "Lovelace", profile.LastName)
}

func TestMeEndpointRejectsMissingAndBadTokens(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"wrong scheme", "Basic abc123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/v1/me", nil)
			require.NoError(t, err)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			challenge := resp.Header.Get("WWW-Authenticate")
			require.Contains(t, challenge, "Bearer")
			require.Contains(t, challenge, `error="invalid_token"`)

			errResp := decodeBody[accountsdk.ErrorResponse](t, resp)
			require.Equal(t, accountsdk.ErrorCodeInvalidToken, errResp.Error)
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decodeBody[accountsdk.HealthResponse](t, resp)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	resp, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ready := decodeBody[accountsdk.HealthResponse](t, resp)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
