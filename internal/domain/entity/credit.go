package entity

import "time"

// CreditStatus ciclo de vida de um crédito individual.
type CreditStatus string

// Status válidos de crédito (valores fazem parte do contrato de wire).
const (
	CreditPending     CreditStatus = "pending"
	CreditAvailable   CreditStatus = "available"
	CreditUnavailable CreditStatus = "unavailable" // consumido ou expirado
)

// Credit uma unidade de crédito resgatável. Quantidade nunca é armazenada como
// contador: cada unidade é sua própria linha, com status independente.
// CompanyID é desnormalizado do cartão no momento da criação.
type Credit struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	CardID      string       `bson:"card_id" json:"card_id"`
	UserID      string       `bson:"user_id" json:"user_id"`
	CompanyID   string       `bson:"company_id" json:"company_id"`
	Status      CreditStatus `bson:"status" json:"status"`
	Excluded    bool         `bson:"excluded" json:"-"`
	RequestedAt *time.Time   `bson:"requested_at,omitempty" json:"requested_at,omitempty"`
	ExpiresAt   time.Time    `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// PendingCredit leitura agregada de um crédito pendente com cartão e consumidor.
type PendingCredit struct {
	Credit   Credit `bson:"credit" json:"credit"`
	Card     Card   `bson:"card" json:"card"`
	Consumer User   `bson:"consumer" json:"consumer"`
}

// CardCredits leitura agregada: créditos de um consumidor agrupados por cartão.
type CardCredits struct {
	Card    Card     `bson:"card" json:"card"`
	Credits []Credit `bson:"credits" json:"credits"`
}
