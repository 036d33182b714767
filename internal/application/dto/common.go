package dto

import "github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"

// Principal identidade autenticada anexada à requisição após o middleware de auth.
type Principal struct {
	UserID    string
	Role      entity.UserRole
	CompanyID string // vazio exceto para role client
}

// MessageResponse corpo de sucesso com mensagem localizada.
type MessageResponse struct {
	Message string `json:"message"`
}

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int64 `query:"limit"`
	Offset int64 `query:"offset"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
