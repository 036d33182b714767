package auth

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/caramelo-app/caramelo-api-sub001/internal/application/dto"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/i18n"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/jwt"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/phone"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/token"
)

// Mensagens de erro do fluxo de autenticação (contrato de wire).
// "resource not found" cobre telefone desconhecido e conta não disponível no
// login, de propósito: não vazar estado de conta.
const (
	msgResourceNotFound = "resource not found"
	msgInvalidPassword  = "invalid password"
	msgInvalidToken     = "invalid token"
	msgTokenExpired     = "token expired"
)

// JWTConfig configuração para emissão da credencial de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Notifier porta de entrega out-of-band (SMS). O token de recuperação nunca
// aparece em corpo de resposta.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

// AuthUseCase casos de uso de autenticação: login e recuperação de senha.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	companyRepo  repository.CompanyRepository
	tokens       *token.Service
	notifier     Notifier
	loc          *i18n.Localizer
	jwtCfg       JWTConfig
	tokenWindow  time.Duration
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	tokens *token.Service,
	notifier Notifier,
	loc *i18n.Localizer,
	jwtCfg JWTConfig,
	tokenWindowMinutes int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		notifier:    notifier,
		loc:         loc,
		jwtCfg:      jwtCfg,
		tokenWindow: time.Duration(tokenWindowMinutes) * time.Minute,
	}
}

// Login verifica telefone/senha, emite a credencial de sessão e devolve os
// perfis públicos. Telefone desconhecido e conta indisponível produzem o mesmo
// Unauthorized genérico.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}

	user, err := uc.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active() {
		return nil, domain.NewUnauthorizedError(msgResourceNotFound, "Check the credentials and try again.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.NewUnauthorizedError(msgInvalidPassword, "Check the credentials and try again.")
	}

	accessToken, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), user.CompanyID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.NewInternalServerError(err)
	}

	out := &dto.LoginResponse{
		TokenType:   "Bearer",
		AccessToken: accessToken,
		ExpiresIn:   int64(uc.jwtCfg.ExpMinutes) * 60,
		User:        dto.ToUserResponse(user),
	}

	if user.Role == entity.RoleClient {
		company, err := uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			resp := dto.ToCompanyResponse(company)
			out.Company = &resp
		}
	}

	return out, nil
}

// ForgotPassword gera um token de recuperação, persiste o par token/expiração
// no usuário e entrega por SMS. Telefone não cadastrado (ou conta indisponível)
// responde NotFound genérico, sem revelar mais nada.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) error {
	if err := in.Validate(); err != nil {
		return domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	normalized, err := phone.Normalize(in.Phone)
	if err != nil {
		return domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}

	user, err := uc.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return err
	}
	if user == nil || !user.Active() {
		return domain.NewNotFoundError(msgResourceNotFound, "Check the submitted phone and try again.")
	}

	recoverToken, err := uc.tokens.Generate()
	if err != nil {
		return domain.NewInternalServerError(err)
	}
	expiresAt := time.Now().Add(uc.tokenWindow)
	user.RecoverToken = recoverToken
	user.RecoverTokenExpiresAt = &expiresAt
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	body := uc.loc.Localize("auth.recover_token_sms", map[string]string{
		"token":   recoverToken,
		"minutes": strconv.Itoa(int(uc.tokenWindow / time.Minute)),
	})
	if err := uc.notifier.Send(ctx, user.Phone, body); err != nil {
		return domain.NewInternalServerError(err)
	}
	return nil
}

// ValidateToken checa o token de recuperação e o invalida (uso único). É o
// endpoint avulso de "esse link ainda vale?": a validação consome o token.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, in dto.ValidateTokenRequest) error {
	if err := in.Validate(); err != nil {
		return domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	user, err := uc.consumeRecoverToken(ctx, in.Phone, in.Token)
	if err != nil {
		return err
	}
	return uc.userRepo.Update(ctx, user)
}

// ResetPassword executa a mesma sequência check-then-clear e adicionalmente
// troca a senha. Como validate-token e reset-password consomem o mesmo token,
// apenas um dos dois pode suceder contra um token pendente.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if err := in.Validate(); err != nil {
		return domain.NewValidationError(err.Error(), "Check the submitted data and try again.")
	}
	user, err := uc.consumeRecoverToken(ctx, in.Phone, in.Token)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalServerError(err)
	}
	user.Password = string(hash)
	return uc.userRepo.Update(ctx, user)
}

// consumeRecoverToken faz a sequência check-then-clear compartilhada: busca o
// usuário, confere token e expiração e limpa o par em memória. O chamador
// persiste via Update — em uma única escrita, junto com o que mais mudar.
func (uc *AuthUseCase) consumeRecoverToken(ctx context.Context, rawPhone, rawToken string) (*entity.User, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		return nil, domain.NewValidationError("invalid phone", "Submit a valid phone number.")
	}
	if !uc.tokens.ValidFormat(rawToken) {
		return nil, domain.NewValidationError(msgInvalidToken, "Check the submitted token and try again.")
	}

	user, err := uc.userRepo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError(msgResourceNotFound, "Check the submitted phone and try again.")
	}
	if user.RecoverToken == "" || user.RecoverToken != rawToken {
		return nil, domain.NewUnauthorizedError(msgInvalidToken, "Request a new recovery token.")
	}
	if user.RecoverTokenExpiresAt == nil || !time.Now().Before(*user.RecoverTokenExpiresAt) {
		return nil, domain.NewUnauthorizedError(msgTokenExpired, "Request a new recovery token.")
	}

	user.RecoverToken = ""
	user.RecoverTokenExpiresAt = nil
	return user, nil
}
