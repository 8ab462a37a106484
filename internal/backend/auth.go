package backend

import (
	"context"
	"net/http"
)

type tokenKey struct{}

// WithToken stores the caller's Authorization header value to be forwarded upstream.
func WithToken(ctx context.Context, authorization string) context.Context {
	if authorization == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, authorization)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ForwardAuthorization is a middleware passing the staff member's credentials to the backend.
func ForwardAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithToken(r.Context(), r.Header.Get("Authorization"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
