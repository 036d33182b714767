package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/caramelo-app/caramelo-api-sub001/internal/application/auth"
	"github.com/caramelo-app/caramelo-api-sub001/internal/application/usecase"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/geocode"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/mongodb"
	"github.com/caramelo-app/caramelo-api-sub001/internal/infrastructure/notification"
	httpRouter "github.com/caramelo-app/caramelo-api-sub001/internal/interfaces/http"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/config"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao MongoDB")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("índices do MongoDB")
	}

	userRepo := mongodb.NewUserRepository(db)
	companyRepo := mongodb.NewCompanyRepository(db)
	cardRepo := mongodb.NewCardRepository(db)
	creditRepo := mongodb.NewCreditRepository(db)
	txRunner := mongodb.NewTxRunner(client)

	smsSender := notification.NewSMSSender(cfg.SMS, log)
	geocoder := geocode.NewGeocoder(cfg.Geocode, db, log)
	tokens := token.NewService(cfg.Token.Length)

	authUC := appauth.NewAuthUseCase(userRepo, companyRepo, tokens, smsSender, i18n.New(""), appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Token.Expiration)
	companyUC := usecase.NewCompanyUseCase(companyRepo, geocoder, log)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo)
	cardUC := usecase.NewCardUseCase(cardRepo)
	creditUC := usecase.NewCreditUseCase(txRunner, userRepo, creditRepo, cfg.Credit.ExpirationDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		UserUC:      userUC,
		CardUC:      cardUC,
		CreditUC:    creditUC,
		UserRepo:    userRepo,
		CompanyRepo: companyRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("API no ar")

	// Shutdown gracioso
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando aplicação")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor")
	}
}
