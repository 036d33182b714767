package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/auth"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	CardUC      *usecase.CardUseCase
	CreditUC    *usecase.CreditUseCase
	UserRepo    repository.UserRepository
	CompanyRepo repository.CompanyRepository
	JWTSecret   string
}

// Router registra as rotas da API. Cadeia das rotas protegidas:
// AuthMiddleware → ResourceGuard → RequireRole → handler.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/validate-token", authHandler.ValidateToken)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rotas protegidas (Bearer + revalidação de estado)
	protected := api.Group("",
		AuthMiddleware(deps.JWTSecret),
		ResourceGuard(deps.UserRepo, deps.CompanyRepo),
	)

	// Companies e users client (admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserUC)
	companies := protected.Group("/companies", RequireRole(entity.RoleAdmin))
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	protected.Post("/users", RequireRole(entity.RoleAdmin), companyHandler.CreateClient)

	// Cards (client)
	cardHandler := NewCardHandler(deps.CardUC)
	cards := protected.Group("/cards", RequireRole(entity.RoleClient))
	cards.Post("/", cardHandler.Create)
	cards.Get("/", cardHandler.List)
	cards.Delete("/:id", cardHandler.Delete)

	// Consumers e créditos (client)
	consumerHandler := NewConsumerHandler(deps.CreditUC)
	consumers := protected.Group("/consumers", RequireRole(entity.RoleClient))
	consumers.Post("/", consumerHandler.Create)
	consumers.Get("/:id", consumerHandler.Profile)
	consumers.Delete("/:id", consumerHandler.Delete)
	protected.Get("/credits/pending", RequireRole(entity.RoleClient), consumerHandler.PendingCredits)
}
