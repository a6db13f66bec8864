package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/parser-config-api/internal/application/dto"
	"github.com/jhoicas/parser-config-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalSubject = "subject"
	LocalOrgID   = "org_id"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja subject, org_id y role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Status: fiber.StatusUnauthorized, Code: "MISSING_TOKEN", Message: "Authorization header is required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Status: fiber.StatusUnauthorized, Code: "INVALID_TOKEN", Message: "expected format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Status: fiber.StatusUnauthorized, Code: "MISSING_TOKEN", Message: "empty token"})
		}
		subject, orgID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Status: fiber.StatusUnauthorized, Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalOrgID, orgID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Va DESPUÉS de AuthMiddleware.
//   - 401 MISSING_ROLE → token sin claim de rol.
//   - 403 FORBIDDEN    → rol no permitido.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Status: fiber.StatusUnauthorized, Code: "MISSING_ROLE", Message: "token has no role claim"})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: "role '" + role + "' cannot perform this action"})
		}
		return c.Next()
	}
}

// GetSubject devuelve el subject del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string { return localString(c, LocalSubject) }

// GetOrgID devuelve la organización del token; vacío si la auth está deshabilitada.
func GetOrgID(c *fiber.Ctx) string { return localString(c, LocalOrgID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
