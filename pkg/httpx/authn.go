package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/barcommun/pkg/jwtx"
	"github.com/aussiebroadwan/barcommun/pkg/slogx"
)

// Authenticate verifies a bearer token when one is presented and stores its
// claims on the request context. Requests without an Authorization header
// pass through anonymously; whether that is acceptable is decided later by
// the access guard. A header that is present but invalid is rejected here.
func Authenticate(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			log := slogx.FromContext(r.Context())

			scheme, raw, ok := strings.Cut(header, " ")
			raw = strings.TrimSpace(raw)
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				WriteBearerError(w, "invalid_request", "malformed authorization header")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteBearerError(w, "invalid_token", "token verification failed")
				return
			}

			r = slogx.Annotate(r, "sub", claims.Subject)
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}
