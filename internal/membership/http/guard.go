package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/barcommun/internal/membership/authz"
	"github.com/aussiebroadwan/barcommun/pkg/httpx"
	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/aussiebroadwan/barcommun/pkg/membersdk"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

type principalKey struct{}

// PrincipalFromContext returns the caller resolved by the guard, or nil for
// anonymous requests.
func PrincipalFromContext(ctx context.Context) *authz.Principal {
	p, _ := ctx.Value(principalKey{}).(*authz.Principal)
	return p
}

// principalFromClaims maps verified token claims onto a Principal. Role
// strings unknown to the catalog are dropped, never trusted.
func principalFromClaims(ctx context.Context, c jwtx.Claims) *authz.Principal {
	p := &authz.Principal{Subject: c.Subject, Roles: make(authz.Roles, 0, len(c.Roles))}
	for _, raw := range c.Roles {
		role, err := authz.ParseRole(raw)
		if err != nil {
			slogx.FromContext(ctx).Warn("dropping unknown role from token", "sub", c.Subject, "role", raw)
			continue
		}
		if !p.Roles.Has(role) {
			p.Roles = append(p.Roles, role)
		}
	}
	return p
}

// guard enforces op on every request. It panics when op is missing from the
// policy, so a route without declared permissions never starts.
func (r *Router) guard(op authz.Operation) httpx.Middleware {
	if _, err := r.guardian.Requirements(op); err != nil {
		panic(fmt.Sprintf("http: route registered for undeclared operation: %v", err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			log := slogx.FromContext(ctx)

			var principal *authz.Principal
			if claims, ok := httpx.ClaimsFromContext(ctx); ok {
				principal = principalFromClaims(ctx, claims)
			}

			decision, err := r.guardian.Check(op, principal)
			if err != nil {
				log.Error("guard check failed", "operation", op, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, membersdk.ErrorCodeServerError, "internal server error")
				return
			}
			r.metrics.ObserveDecision(string(op), decision.Kind.String())

			if !decision.Allowed {
				log.Info("access denied", "operation", op, "kind", decision.Kind.String(), "reason", decision.Reason)
				writeDenial(w, decision)
				return
			}

			ctx = context.WithValue(ctx, principalKey{}, principal)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func writeDenial(w http.ResponseWriter, d authz.Decision) {
	switch d.Kind {
	case authz.KindUnauthenticated:
		writeUnauthenticated(w, d.Reason)
	default:
		httpx.WriteError(w, http.StatusForbidden, membersdk.ErrorCodeInsufficientPermissions, d.Reason)
	}
}

func writeUnauthenticated(w http.ResponseWriter, reason string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="barcommun"`)
	httpx.WriteError(w, http.StatusUnauthorized, membersdk.ErrorCodeUnauthenticated, reason)
}
