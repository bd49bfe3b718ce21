package auth

import (
	"context"
	"net/http"
)

type identityKey struct{}

// RequireIdentity gates a route group on an established session. Anonymous
// requests are redirected to the login page rather than answered with an
// error; authenticated ones proceed with the identity in the request context.
func (s *Sessions) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.Current(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), identityKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom extracts the identity placed in the context by
// RequireIdentity.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
