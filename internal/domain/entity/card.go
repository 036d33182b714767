package entity

import "time"

// Card cartão fidelidade de uma empresa. Pertence a exatamente uma empresa
// durante toda a vida.
type Card struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	CompanyID string         `bson:"company_id" json:"company_id"`
	Title     string         `bson:"title" json:"title"`
	Status    ResourceStatus `bson:"status" json:"status"`
	Excluded  bool           `bson:"excluded" json:"-"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}
