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

var _ repository.CardRepository = (*CardRepo)(nil)

// CardRepo implementação da porta CardRepository sobre MongoDB.
type CardRepo struct {
	store *DataStore
}

// NewCardRepository constrói o adaptador de persistência para cartões.
func NewCardRepository(db *mongo.Database) *CardRepo {
	return &CardRepo{store: NewDataStore(db, CardsCollection)}
}

// Create persiste um novo cartão.
func (r *CardRepo) Create(ctx context.Context, card *entity.Card) error {
	if card.ID == "" {
		card.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.store.Create(ctx, card)
	return err
}

// GetByID obtém um cartão por id; (nil, nil) quando não existe.
func (r *CardRepo) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	var c entity.Card
	found, err := r.store.ReadOne(ctx, bson.M{"_id": id}, nil, &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// ListByCompany devolve os cartões não excluídos de uma empresa.
func (r *CardRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Card, error) {
	var list []*entity.Card
	err := r.store.List(ctx, ListOptions{
		Filter: bson.M{"company_id": companyID, "excluded": false},
		Sort:   bson.D{{Key: "created_at", Value: -1}},
	}, &list)
	return list, err
}

// SoftDelete marca o cartão como excluído e indisponível, de forma permanente.
func (r *CardRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.store.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"excluded":   true,
		"status":     entity.StatusUnavailable,
		"updated_at": time.Now(),
	}})
	return err
}
