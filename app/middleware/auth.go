package middleware

import (
	"context"
	"net/http"
	"strings"
	jwtutil "worksuite/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Signer *jwtutil.Signer }

// token pulls the bearer token from the Authorization header, falling back
// to the session cookie.
func token(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := token(r)
		if t == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		claims, err := a.Signer.Parse(t)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth decodes the token when present and valid; an absent or invalid
// token is tolerated and the request proceeds unauthenticated.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t := token(r); t != "" {
			if claims, err := a.Signer.Parse(t); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims))
			}
		}
		next.ServeHTTP(w, r)
	})
}
