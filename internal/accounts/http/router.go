package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/solara-app/accounts/internal/accounts/service"
	"github.com/solara-app/accounts/internal/accounts/store"
	"github.com/solara-app/accounts/pkg/httpx"
	"github.com/solara-app/accounts/pkg/slogx"

	_ "github.com/solara-app/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	dev          bool

	store       store.Store
	AuthService *service.AuthService
}

func NewRouter(
	buildVersion string,
	dev bool,
	st store.Store,
	cors httpx.CORSConfig,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		dev:          dev,
		store:        st,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(cors),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Solara Accounts Service API
//	@version		0.1.0
//	@description	Registration, login and session verification for the Solara marketing site.
//	@description
//	@description				Sessions are stateless HS256-signed tokens. Clients send them as a
//	@description				bearer token; logout is purely client-side.
//
//	@contact.name				Solara Team
//	@contact.url				https://github.com/solara-app/accounts
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5001
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService, Dev: r.dev}
	loginHandler := &LoginHandler{AuthService: r.AuthService, Dev: r.dev}

	// POST /auth/register - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP + email body field so one
	// address can't be brute forced from a shared NAT
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
}

func (r *Router) registerProfile() {
	h := &MeHandler{}

	// Authenticated endpoint - lenient rate limit by user
	secured := httpx.Chain(h,
		requireSession(r.AuthService),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/me", secured)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
