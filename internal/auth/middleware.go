package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/studio-cms/internal/domain"
	"github.com/spec-kit/studio-cms/internal/repository"
	apperrors "github.com/spec-kit/studio-cms/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates bearer tokens and loads the principal. The
// account record is fetched on every request so capability changes (admin
// promotion or revocation) take effect on the next request, not at the
// token's expiry.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("not authorized, no token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("not authorized, no token")
	}

	accountID, err := m.tokens.Parse(parts[1])
	if err != nil {
		if errors.Is(err, ErrExpiredToken) {
			return apperrors.NewUnauthorized("token expired")
		}
		return apperrors.NewUnauthorized("invalid token")
	}

	user, err := m.users.GetByID(c.Context(), accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Account deleted after the token was issued.
			return apperrors.NewUnauthorized("not authorized, token failed")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, user.Sanitized())
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated account for this request.
func PrincipalFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.User)
	return principal, ok
}
