package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação da porta CompanyRepository sobre MongoDB.
type CompanyRepo struct {
	store *DataStore
}

// NewCompanyRepository constrói o adaptador de persistência para empresas.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{store: NewDataStore(db, CompaniesCollection)}
}

// Create persiste uma nova empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if company.ID == "" {
		company.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.store.Create(ctx, company)
	return err
}

// GetByID obtém uma empresa por id; (nil, nil) quando não existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	found, err := r.store.ReadOne(ctx, bson.M{"_id": id}, nil, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// List devolve empresas não excluídas, mais recentes primeiro.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int64) ([]*entity.Company, error) {
	var list []*entity.Company
	err := r.store.List(ctx, ListOptions{
		Filter: bson.M{"excluded": false},
		Sort:   bson.D{{Key: "created_at", Value: -1}},
		Skip:   offset,
		Limit:  limit,
	}, &list)
	return list, err
}

// Update persiste os campos mutáveis da empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	company.UpdatedAt = time.Now()
	_, err := r.store.UpdateOne(ctx, bson.M{"_id": company.ID}, bson.M{"$set": bson.M{
		"name":       company.Name,
		"phone":      company.Phone,
		"address":    company.Address,
		"logo":       company.Logo,
		"segment_id": company.SegmentID,
		"document":   company.Document,
		"status":     company.Status,
		"excluded":   company.Excluded,
		"updated_at": company.UpdatedAt,
	}})
	return err
}

// SoftDelete marca a empresa como excluída e indisponível, de forma permanente.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.store.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"excluded":   true,
		"status":     entity.StatusUnavailable,
		"updated_at": time.Now(),
	}})
	return err
}
