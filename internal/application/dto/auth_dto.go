package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// LoginRequest entrada do login (telefone + senha).
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Validate checa os campos obrigatórios.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse credencial de sessão + perfis públicos.
type LoginResponse struct {
	TokenType   string           `json:"tokenType"` // sempre "Bearer"
	AccessToken string           `json:"accessToken"`
	ExpiresIn   int64            `json:"expiresIn"` // segundos
	User        UserResponse     `json:"user"`
	Company     *CompanyResponse `json:"company,omitempty"` // presente para role client
}

// ForgotPasswordRequest entrada do fluxo de esqueci-minha-senha.
type ForgotPasswordRequest struct {
	Phone string `json:"phone"`
}

// Validate checa os campos obrigatórios.
func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required),
	)
}

// ValidateTokenRequest entrada da validação avulsa do token de recuperação.
type ValidateTokenRequest struct {
	Phone string `json:"phone"`
	Token string `json:"token"`
}

// Validate checa os campos obrigatórios.
func (r ValidateTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Token, validation.Required),
	)
}

// ResetPasswordRequest entrada da troca de senha com token.
type ResetPasswordRequest struct {
	Phone    string `json:"phone"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Validate checa os campos obrigatórios.
func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Token, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(3, 72)),
	)
}
