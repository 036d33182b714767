package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/entity"
	"github.com/caramelo-app/caramelo-api-sub001/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implementação da porta CreditRepository sobre MongoDB.
type CreditRepo struct {
	store *DataStore
}

// NewCreditRepository constrói o adaptador de persistência para créditos.
func NewCreditRepository(db *mongo.Database) *CreditRepo {
	return &CreditRepo{store: NewDataStore(db, CreditsCollection)}
}

// CreateMany insere unidades de crédito individuais em lote.
func (r *CreditRepo) CreateMany(ctx context.Context, credits []*entity.Credit) error {
	docs := make([]interface{}, 0, len(credits))
	for _, c := range credits {
		if c.ID == "" {
			c.ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, c)
	}
	_, err := r.store.CreateMany(ctx, docs)
	return err
}

// ListPendingByCompany junta créditos pendentes com cartão e consumidor, em
// ordem de criação.
func (r *CreditRepo) ListPendingByCompany(ctx context.Context, companyID string) ([]*entity.PendingCredit, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "company_id", Value: companyID},
			{Key: "status", Value: entity.CreditPending},
			{Key: "excluded", Value: false},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CardsCollection},
			{Key: "localField", Value: "card_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "card"},
		}}},
		{{Key: "$unwind", Value: "$card"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UsersCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "consumer"},
		}}},
		{{Key: "$unwind", Value: "$consumer"}},
		{{Key: "$project", Value: bson.D{
			{Key: "credit", Value: "$$ROOT"},
			{Key: "card", Value: 1},
			{Key: "consumer", Value: 1},
		}}},
	}
	var list []*entity.PendingCredit
	if err := r.store.Aggregate(ctx, pipeline, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListByUserGroupedByCard agrupa os créditos não excluídos de um consumidor
// por cartão, uma entrada por cartão, com a lista aninhada de créditos.
func (r *CreditRepo) ListByUserGroupedByCard(ctx context.Context, userID string) ([]*entity.CardCredits, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "user_id", Value: userID},
			{Key: "excluded", Value: false},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$card_id"},
			{Key: "credits", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CardsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "card"},
		}}},
		{{Key: "$unwind", Value: "$card"}},
		{{Key: "$project", Value: bson.D{
			{Key: "card", Value: 1},
			{Key: "credits", Value: 1},
		}}},
	}
	var list []*entity.CardCredits
	if err := r.store.Aggregate(ctx, pipeline, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// HasActiveLink informa se existe crédito não excluído ligando empresa e consumidor.
func (r *CreditRepo) HasActiveLink(ctx context.Context, companyID, userID string) (bool, error) {
	n, err := r.store.Count(ctx, bson.M{
		"company_id": companyID,
		"user_id":    userID,
		"excluded":   false,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
