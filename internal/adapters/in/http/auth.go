package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/services"
	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// actorKey is the echo context key the authenticated user is stored under.
const actorKey = "actor"

// authenticate resolves the bearer token into an actor and stores it on the
// context. It never rejects: a missing, malformed, or stale token simply
// leaves the request anonymous, and the per-route requirement decides
// whether anonymous is enough.
func authenticate(signer ports.TokenSigner, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return next(ctx)
			}

			userID, err := signer.Verify(token)
			if err != nil {
				return next(ctx)
			}

			actor, err := users.Get(ctx.Request().Context(), userID)
			if err != nil {
				return next(ctx)
			}

			ctx.Set(actorKey, actor)

			return next(ctx)
		}
	}
}

// actorFrom returns the authenticated user, or nil for anonymous requests.
func actorFrom(ctx echo.Context) *user.User {
	actor, _ := ctx.Get(actorKey).(*user.User)
	return actor
}

// guarded wraps a handler with its declared role requirement. Anonymous
// requests to restricted routes get 401; authenticated requests with the
// wrong role get 403.
func guarded(required services.RoleRequirement, next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		actor := actorFrom(ctx)

		if services.Authorize(actor, required) {
			return next(ctx)
		}

		if actor == nil {
			return ctx.JSON(http.StatusUnauthorized, envelope{Ok: false, Error: "authentication required"})
		}

		return ctx.JSON(http.StatusForbidden, envelope{Ok: false, Error: "access denied"})
	}
}
