// Package auth provides the bearer-token middleware that resolves the
// session token into the current user, and the admin-role gate on top.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gestorfichas/internal/domain/user"
)

type Auth struct {
	users user.Servicer
	log   *slog.Logger
}

func New(users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		users: users,
		log:   log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const currentUserKey contextKey = "currentUser"

// Middleware validates the Authorization bearer token and stores the public
// user view in the request context.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		public, err := a.users.VerifyToken(ctx.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Warn("token rejected", slog.Any("error", err))
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next(huma.WithContext(ctx, WithUser(ctx.Context(), public)))
	}
}

// RequireAdmin gates admin-only operations. It must run after Middleware.
func (a *Auth) RequireAdmin() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		public, ok := CurrentUser(ctx.Context())
		if !ok || public.Role != user.RoleAdmin {
			a.log.Warn("admin operation rejected", slog.String("username", public.Username))
			a.reject(ctx, http.StatusForbidden, "Forbidden")
			return
		}
		next(ctx)
	}
}

// WithUser returns a context carrying the given user, the same way
// Middleware stores it.
func WithUser(ctx context.Context, public user.PublicUser) context.Context {
	return context.WithValue(ctx, currentUserKey, public)
}

// CurrentUser returns the authenticated user stored by Middleware.
func CurrentUser(ctx context.Context) (user.PublicUser, bool) {
	public, ok := ctx.Value(currentUserKey).(user.PublicUser)
	return public, ok
}

func (a *Auth) reject(ctx huma.Context, status int, message string) {
	ctx.SetStatus(status)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": message,
	}); err != nil {
		a.log.Error("encoding rejection body", slog.Any("error", err))
	}
}
