package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
)

// RequireRole autoriza a requisição se o papel autenticado estiver na
// allow-list da operação. A resposta não revela quais papéis seriam aceitos.
// Deve ser usado DEPOIS de AuthMiddleware.
func RequireRole(allowed ...entity.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		for _, role := range allowed {
			if principal.Role == role {
				return c.Next()
			}
		}
		return domain.NewForbiddenError("access denied", "Check the account permissions and try again.")
	}
}
