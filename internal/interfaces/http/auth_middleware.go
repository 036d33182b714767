package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/jwt"
)

// Local key do principal autenticado em c.Locals.
const LocalPrincipal = "principal"

// AuthMiddleware valida assinatura e expiração do Bearer token e anexa o
// principal ao contexto. Não consulta a base: é checagem pura de credencial;
// o estado do recurso é revalidado pelo ResourceGuard na sequência.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return domain.NewUnauthorizedError("token not found", "Sign in and submit the authorization token.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return domain.NewUnauthorizedError("invalid token", "Sign in again and retry.")
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return domain.NewUnauthorizedError("invalid token", "Sign in again and retry.")
		}
		c.Locals(LocalPrincipal, dto.Principal{
			UserID:    claims.UserID,
			Role:      entity.UserRole(claims.Role),
			CompanyID: claims.CompanyID,
		})
		return c.Next()
	}
}

// GetPrincipal devolve o principal do contexto (após o middleware de auth).
func GetPrincipal(c *fiber.Ctx) dto.Principal {
	p, _ := c.Locals(LocalPrincipal).(dto.Principal)
	return p
}
