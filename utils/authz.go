package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenPrincipal is the identity carried by a verified JWT.
type TokenPrincipal struct {
	ID       uuid.UUID
	Username string
	Role     string
	Type     string
}

// PrincipalFromCtx extracts the token claims placed on the context by the
// JWT middleware.
func PrincipalFromCtx(c *fiber.Ctx) TokenPrincipal {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	id, _ := uuid.Parse(claims["id"].(string))
	principal := TokenPrincipal{ID: id}
	if username, ok := claims["username"].(string); ok {
		principal.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if ptype, ok := claims["type"].(string); ok {
		principal.Type = ptype
	}
	return principal
}

// CanAccess is the row-level policy shared by every ownership-scoped
// handler: the owner may access their own rows, and any of the listed
// privileged roles may access all rows.
func CanAccess(principal TokenPrincipal, ownerID uuid.UUID, adminRoles ...string) bool {
	if principal.ID == ownerID {
		return true
	}
	for _, role := range adminRoles {
		if principal.Role == role {
			return true
		}
	}
	return false
}

// IsPrivileged reports whether the principal holds any of the given roles.
func IsPrivileged(principal TokenPrincipal, adminRoles ...string) bool {
	for _, role := range adminRoles {
		if principal.Role == role {
			return true
		}
	}
	return false
}
