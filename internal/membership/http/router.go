package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/secure"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/internal/membership/observability"
	"github.com/aussiebroadwan/barcommun/internal/membership/service"
	"github.com/aussiebroadwan/barcommun/internal/membership/store"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"

	_ "github.com/aussiebroadwan/barcommun/api/membership" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux chi.Router

	guardian     *authz.Guard
	metrics      *observability.Metrics
	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// CachePing reports the state of the plan cache. Nil when caching is off.
	CachePing func(ctx context.Context) error

	UserService           *service.UserService
	MembershipService     *service.MembershipService
	UserMembershipService *service.UserMembershipService
	RolesService          *service.RolesService
}

// NewRouter builds a router enforcing Policy. It fails when the policy names
// an unknown permission.
func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	metrics *observability.Metrics,
	logger *slog.Logger,
) (*Router, error) {
	guardian, err := authz.NewGuard(Policy)
	if err != nil {
		return nil, fmt.Errorf("build access guard: %w", err)
	}

	r := &Router{
		Mux:          chi.NewRouter(),
		guardian:     guardian,
		metrics:      metrics,
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'",
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	})

	// Default middleware chain
	r.Mux.Use(
		slogx.HTTPMiddleware(r.logger),
		middleware.Recoverer,
		secureMiddleware.Handler,
		r.metrics.Middleware,
	)

	return r, nil
}

func (r *Router) ApplyRoutes() {
	r.registerSystem()

	r.Mux.Route("/v1", func(v1 chi.Router) {
		// Tokens are verified once for the whole API. Anonymous requests pass
		// and are judged per route by the guard.
		v1.Use(httpx.Authenticate(r.verifier))

		r.registerRoles(v1)
		r.registerUsers(v1)
		r.registerMemberships(v1)
		r.registerUserMemberships(v1)
	})

	r.Mux.Handle("/swagger/*", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router.
//
//	@title			Barcommun Membership API
//	@version		0.1.0
//	@description	Member, membership plan and subscription management for the association.
//	@description
//	@description				Every /v1 route is guarded by role-based permissions. Roles are read from the bearer token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/barcommun
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Mux.ServeHTTP(w, req)
}

// read and write wrap h with the guard for op and the matching rate limit.
func (r *Router) read(op authz.Operation, h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, r.guard(op), httpx.RateLimitBySubject(httpx.ReadLimit))
}

func (r *Router) write(op authz.Operation, h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, r.guard(op), httpx.RateLimitBySubject(httpx.WriteLimit))
}

func (r *Router) registerRoles(mux chi.Router) {
	h := &RolesHandler{RolesService: r.RolesService}

	mux.Method(http.MethodGet, "/roles", r.read(OpListRoles, h.HandleList))
	mux.Method(http.MethodGet, "/me", r.read(OpWhoAmI, h.HandleWhoAmI))
}

func (r *Router) registerUsers(mux chi.Router) {
	h := &UsersHandler{UserService: r.UserService}
	um := &UserMembershipsHandler{UserMembershipService: r.UserMembershipService}

	mux.Method(http.MethodGet, "/users", r.read(OpListUsers, h.HandleList))
	mux.Method(http.MethodPost, "/users", r.write(OpCreateUser, h.HandleCreate))
	mux.Method(http.MethodGet, "/users/{id}", r.read(OpGetUser, h.HandleGet))
	mux.Method(http.MethodPatch, "/users/{id}", r.write(OpPatchUser, h.HandlePatch))
	mux.Method(http.MethodPut, "/users/{id}", r.write(OpReplaceUser, h.HandleReplace))
	mux.Method(http.MethodDelete, "/users/{id}", r.write(OpDeleteUser, h.HandleDelete))
	mux.Method(http.MethodPut, "/users/{id}/roles", r.write(OpUpdateUserRoles, h.HandleUpdateRoles))

	mux.Method(http.MethodGet, "/users/{id}/memberships",
		r.read(OpListMembershipsOfUser, um.HandleListForUser))
	mux.Method(http.MethodGet, "/users/{id}/memberships/active",
		r.read(OpGetActiveMembershipOfUser, um.HandleActiveForUser))
	mux.Method(http.MethodGet, "/users/{id}/memberships/{membershipID}",
		r.read(OpGetUserMembershipByPair, um.HandleGetByPair))
}

func (r *Router) registerMemberships(mux chi.Router) {
	h := &MembershipsHandler{MembershipService: r.MembershipService}

	mux.Method(http.MethodGet, "/memberships", r.read(OpListMemberships, h.HandleList))
	mux.Method(http.MethodPost, "/memberships", r.write(OpCreateMembership, h.HandleCreate))
	mux.Method(http.MethodGet, "/memberships/{id}", r.read(OpGetMembership, h.HandleGet))
	mux.Method(http.MethodPatch, "/memberships/{id}", r.write(OpPatchMembership, h.HandlePatch))
	mux.Method(http.MethodPut, "/memberships/{id}", r.write(OpReplaceMembership, h.HandleReplace))
	mux.Method(http.MethodDelete, "/memberships/{id}", r.write(OpDeleteMembership, h.HandleDelete))
}

func (r *Router) registerUserMemberships(mux chi.Router) {
	h := &UserMembershipsHandler{UserMembershipService: r.UserMembershipService}

	mux.Method(http.MethodGet, "/user-memberships", r.read(OpListUserMemberships, h.HandleList))
	mux.Method(http.MethodPost, "/user-memberships", r.write(OpCreateUserMembership, h.HandleCreate))
	mux.Method(http.MethodGet, "/user-memberships/{id}", r.read(OpGetUserMembership, h.HandleGet))
	mux.Method(http.MethodPatch, "/user-memberships/{id}", r.write(OpPatchUserMembership, h.HandlePatch))
	mux.Method(http.MethodPut, "/user-memberships/{id}", r.write(OpReplaceUserMembership, h.HandleReplace))
	mux.Method(http.MethodPost, "/user-memberships/{id}/validate",
		r.write(OpValidateUserMembership, h.HandleValidate))
	mux.Method(http.MethodDelete, "/user-memberships/{id}", r.write(OpDeleteUserMembership, h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Probes and scrapes poll often; limit by IP only.
	r.Mux.Method(http.MethodGet, "/livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Method(http.MethodGet, "/readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, r.CachePing),
			httpx.RateLimitByIP(httpx.ReadLimit),
		),
	)
	r.Mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())
}
