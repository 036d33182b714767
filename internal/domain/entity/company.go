package entity

import "time"

// Coordinates par latitude/longitude devolvido pelo geocoder.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Address endereço estruturado de uma empresa.
type Address struct {
	Street       string      `bson:"street" json:"street"`
	Number       string      `bson:"number" json:"number"`
	Neighborhood string      `bson:"neighborhood" json:"neighborhood"`
	City         string      `bson:"city" json:"city"`
	State        string      `bson:"state" json:"state"`
	ZipCode      string      `bson:"zipcode" json:"zipcode"`
	Coordinates  Coordinates `bson:"coordinates" json:"coordinates"`
}

// Company representa uma empresa cliente da plataforma.
type Company struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Phone     string         `bson:"phone" json:"phone"`
	Address   Address        `bson:"address" json:"address"`
	Logo      string         `bson:"logo,omitempty" json:"logo,omitempty"`
	SegmentID string         `bson:"segment_id,omitempty" json:"segment_id,omitempty"`
	Document  string         `bson:"document" json:"document"` // CNPJ
	Status    ResourceStatus `bson:"status" json:"status"`
	Excluded  bool           `bson:"excluded" json:"-"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// Active informa se a empresa está apta a operar.
func (c *Company) Active() bool {
	return c != nil && !c.Excluded && c.Status == StatusAvailable
}
