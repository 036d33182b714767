package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
)

// ResourceGuard revalida, a cada requisição protegida, que o usuário por trás
// da credencial segue autorizado — e, para clients, a empresa também. Isso
// desacopla a autorização dos claims imutáveis da sessão: conta suspensa ou
// excluída após a emissão é bloqueada na requisição seguinte, sem revogação.
//
// A mensagem reaproveita o "invalid token" genérico de propósito.
func ResourceGuard(userRepo repository.UserRepository, companyRepo repository.CompanyRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := GetPrincipal(c)
		if principal.UserID == "" {
			return staleCredential()
		}

		user, err := userRepo.GetByID(c.Context(), principal.UserID)
		if err != nil {
			return err
		}
		if !user.Active() {
			return staleCredential()
		}

		if principal.Role == entity.RoleClient {
			company, err := companyRepo.GetByID(c.Context(), user.CompanyID)
			if err != nil {
				return err
			}
			if !company.Active() {
				return staleCredential()
			}
		}

		return c.Next()
	}
}

func staleCredential() *domain.Error {
	return domain.NewUnauthorizedError("invalid token", "Sign in again and retry.")
}
