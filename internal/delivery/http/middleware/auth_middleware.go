package middleware

import (
	"errors"
	"strings"

	"talent-pool/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUsernameKey = "username"
	CtxRolesKey    = "roles"
)

// AuthMiddleware guards mutating routes by role. A nil middleware (no secret
// configured) lets every request through.
type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	if jwtSvc == nil {
		return nil
	}
	return &AuthMiddleware{jwt: jwtSvc}
}

// RequireRoles admits requests whose access token carries any of roles.
func (m *AuthMiddleware) RequireRoles(roles ...string) fiber.Handler {
	if m == nil {
		return func(c fiber.Ctx) error { return c.Next() }
	}
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if len(roles) > 0 && !claims.HasAnyRole(roles...) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}

		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxRolesKey, claims.Roles)

		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
