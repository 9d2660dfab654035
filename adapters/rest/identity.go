package rest

import (
	"context"
	"net/http"

	"household-tasks/core"
)

// Caller identity headers. Their values are trusted as-is.
const (
	HeaderUser      = "X-User"
	HeaderAdminUser = "X-Admin-User"
)

type callerKey struct{}

func WithCaller(ctx context.Context, a core.Account) context.Context {
	return context.WithValue(ctx, callerKey{}, a)
}

func CallerFrom(ctx context.Context) (core.Account, bool) {
	a, ok := ctx.Value(callerKey{}).(core.Account)
	return a, ok
}

type Resolver interface {
	ResolveCaller(ctx context.Context, username string) (core.Account, error)
	ResolveAdmin(ctx context.Context, username string) (core.Account, error)
}

// RequireCaller resolves the X-User header; missing or unknown names get 401.
func RequireCaller(svc Resolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.ResolveCaller(r.Context(), r.Header.Get(HeaderUser))
		if err != nil {
			WriteErr(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), a)))
	})
}

// RequireAdmin resolves the X-Admin-User header and insists on the admin role; anything else gets 403.
func RequireAdmin(svc Resolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.ResolveAdmin(r.Context(), r.Header.Get(HeaderAdminUser))
		if err != nil {
			WriteErr(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), a)))
	})
}
