package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

// RequireAdmin restricts a route to administrator principals. It reads the
// IsAdmin flag loaded by AuthMiddleware during this request, so a revoked
// flag rejects even a still-valid token.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("not authorized, no token")
		}
		if !principal.IsAdmin {
			return apperrors.NewForbidden("not authorized as admin")
		}
		return c.Next()
	}
}
