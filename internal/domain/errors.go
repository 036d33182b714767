package domain

import (
	"errors"
	"net/http"
)

// Error é o erro estruturado do domínio. Todo erro é resolvido na borda HTTP
// no envelope uniforme {name, message, action, status_code}; a causa original
// fica preservada para diagnóstico e nunca vai para o cliente.
type Error struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	Action     string `json:"action"`
	StatusCode int    `json:"status_code"`

	cause error
}

// Error implementa a interface error.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap expõe a causa original para errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause anexa a causa original a um erro já construído.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// NewValidationError entrada malformada, formato violado ou duplicidade em criação.
func NewValidationError(message, action string) *Error {
	return &Error{
		Name:       "ValidationError",
		Message:    message,
		Action:     action,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUnauthorizedError credencial ausente/inválida/expirada ou estado não autorizado.
func NewUnauthorizedError(message, action string) *Error {
	return &Error{
		Name:       "UnauthorizedError",
		Message:    message,
		Action:     action,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewForbiddenError papel não permitido ou vínculo de posse inexistente.
func NewForbiddenError(message, action string) *Error {
	return &Error{
		Name:       "ForbiddenError",
		Message:    message,
		Action:     action,
		StatusCode: http.StatusForbidden,
	}
}

// NewNotFoundError recurso inexistente.
func NewNotFoundError(message, action string) *Error {
	return &Error{
		Name:       "NotFoundError",
		Message:    message,
		Action:     action,
		StatusCode: http.StatusNotFound,
	}
}

// NewServiceError violação de contrato interno (ex.: operação de dados chamada
// sem opção obrigatória). Indica erro de programação, não falha do cliente.
func NewServiceError(message string) *Error {
	return &Error{
		Name:       "ServiceError",
		Message:    message,
		Action:     "Contact the system administrator.",
		StatusCode: http.StatusInternalServerError,
	}
}

// NewInternalServerError falha de infraestrutura. Mensagem genérica para o
// cliente; causa preservada.
func NewInternalServerError(cause error) *Error {
	return &Error{
		Name:       "InternalServerError",
		Message:    "an internal error occurred",
		Action:     "Try again later.",
		StatusCode: http.StatusInternalServerError,
		cause:      cause,
	}
}

// AsError extrai um *Error de uma cadeia de erros, se houver.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
