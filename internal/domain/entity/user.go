package entity

import "time"

// UserRole papel de um usuário no sistema.
type UserRole string

// Papéis válidos (valores fazem parte do contrato de wire).
const (
	RoleConsumer UserRole = "consumer"
	RoleClient   UserRole = "client"
	RoleAdmin    UserRole = "admin"
)

// ResourceStatus ciclo de vida de User, Company e Card.
type ResourceStatus string

// Status válidos (valores fazem parte do contrato de wire).
const (
	StatusPending     ResourceStatus = "pending"
	StatusAvailable   ResourceStatus = "available"
	StatusUnavailable ResourceStatus = "unavailable"
)

// User representa um usuário: consumidor, client (operador de empresa) ou admin.
// Remoção nunca é física: excluded = true + status = unavailable, irreversível.
type User struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Phone     string         `bson:"phone" json:"phone"` // E.164 sem "+", único
	Password  string         `bson:"password" json:"-"`  // hash bcrypt, nunca serializado
	Role      UserRole       `bson:"role" json:"role"`
	CompanyID string         `bson:"company_id,omitempty" json:"company_id,omitempty"` // obrigatório sse role = client
	Status    ResourceStatus `bson:"status" json:"status"`
	Excluded  bool           `bson:"excluded" json:"-"`

	// Par de recuperação de senha; limpo após uso único.
	RecoverToken          string     `bson:"recover_token,omitempty" json:"-"`
	RecoverTokenExpiresAt *time.Time `bson:"recover_token_expires_at,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Active informa se o usuário está apto a autenticar e operar.
func (u *User) Active() bool {
	return u != nil && !u.Excluded && u.Status == StatusAvailable
}

// Valid verifica o invariante de construção: client exige company_id.
func (u *User) Valid() bool {
	if u.Role == RoleClient && u.CompanyID == "" {
		return false
	}
	return u.Role == RoleConsumer || u.Role == RoleClient || u.Role == RoleAdmin
}
