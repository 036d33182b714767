package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
)

// Nomes das coleções.
const (
	UsersCollection        = "users"
	CompaniesCollection    = "companies"
	CardsCollection        = "cards"
	CreditsCollection      = "credits"
	GeocodeCacheCollection = "geocode_cache"
)

// DataStore é o handler genérico de acesso a dados sobre uma coleção.
// Concentra o contrato uniforme de CRUD e a taxonomia de erros usados por
// todos os adaptadores de repositório.
type DataStore struct {
	coll *mongo.Collection
}

// NewDataStore constrói o handler para uma coleção.
func NewDataStore(db *mongo.Database, collection string) *DataStore {
	return &DataStore{coll: db.Collection(collection)}
}

// ListOptions opções do List. Filter nil lista tudo.
type ListOptions struct {
	Filter     interface{}
	Projection interface{}
	Sort       interface{}
	Skip       int64
	Limit      int64
}

// List decodifica em results os documentos que casam com o filtro.
func (s *DataStore) List(ctx context.Context, opts ListOptions, results interface{}) error {
	filter := opts.Filter
	if filter == nil {
		filter = map[string]interface{}{}
	}
	findOpts := options.Find()
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return domain.NewInternalServerError(fmt.Errorf("list %s: %w", s.coll.Name(), err))
	}
	if err := cursor.All(ctx, results); err != nil {
		return domain.NewInternalServerError(fmt.Errorf("decode %s: %w", s.coll.Name(), err))
	}
	return nil
}

// ReadOne decodifica em result o primeiro documento que casa com o filtro.
// Nenhum documento é sucesso, não erro: devolve (false, nil).
func (s *DataStore) ReadOne(ctx context.Context, filter, projection, result interface{}) (bool, error) {
	if filter == nil {
		return false, missingOption("readOne", "filter")
	}
	findOpts := options.FindOne()
	if projection != nil {
		findOpts.SetProjection(projection)
	}
	err := s.coll.FindOne(ctx, filter, findOpts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, domain.NewInternalServerError(fmt.Errorf("readOne %s: %w", s.coll.Name(), err))
	}
	return true, nil
}

// Create insere um documento e devolve o id gerado.
func (s *DataStore) Create(ctx context.Context, data interface{}) (string, error) {
	if data == nil {
		return "", missingOption("create", "data")
	}
	res, err := s.coll.InsertOne(ctx, data)
	if err != nil {
		return "", createError(s.coll.Name(), err)
	}
	return insertedID(res.InsertedID), nil
}

// CreateMany insere documentos em lote (ordenado: para no primeiro erro).
func (s *DataStore) CreateMany(ctx context.Context, data []interface{}) ([]string, error) {
	if len(data) == 0 {
		return nil, missingOption("createMany", "data")
	}
	res, err := s.coll.InsertMany(ctx, data, options.InsertMany().SetOrdered(true))
	if err != nil {
		return nil, createError(s.coll.Name(), err)
	}
	ids := make([]string, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		ids = append(ids, insertedID(id))
	}
	return ids, nil
}

// UpdateOne aplica data ao primeiro documento que casa com o filtro.
// Nenhum documento casando é sucesso: devolve (false, nil).
func (s *DataStore) UpdateOne(ctx context.Context, filter, data interface{}) (bool, error) {
	if filter == nil {
		return false, missingOption("updateOne", "filter")
	}
	if data == nil {
		return false, missingOption("updateOne", "data")
	}
	res, err := s.coll.UpdateOne(ctx, filter, data)
	if err != nil {
		return false, domain.NewInternalServerError(fmt.Errorf("updateOne %s: %w", s.coll.Name(), err))
	}
	return res.MatchedCount > 0, nil
}

// UpdateMany aplica data a todos os documentos que casam com o filtro e
// devolve os contadores matched/modified (zero/zero quando nada casa).
func (s *DataStore) UpdateMany(ctx context.Context, filter, data interface{}) (matched, modified int64, err error) {
	if filter == nil {
		return 0, 0, missingOption("updateMany", "filter")
	}
	if data == nil {
		return 0, 0, missingOption("updateMany", "data")
	}
	res, err := s.coll.UpdateMany(ctx, filter, data)
	if err != nil {
		return 0, 0, domain.NewInternalServerError(fmt.Errorf("updateMany %s: %w", s.coll.Name(), err))
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// Remove apaga os documentos que casam com o filtro e devolve a contagem.
func (s *DataStore) Remove(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		return 0, missingOption("remove", "filter")
	}
	res, err := s.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, domain.NewInternalServerError(fmt.Errorf("remove %s: %w", s.coll.Name(), err))
	}
	return res.DeletedCount, nil
}

// Aggregate executa o pipeline e decodifica em results.
func (s *DataStore) Aggregate(ctx context.Context, pipeline, results interface{}) error {
	if pipeline == nil {
		return missingOption("aggregate", "pipeline")
	}
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return domain.NewInternalServerError(fmt.Errorf("aggregate %s: %w", s.coll.Name(), err))
	}
	if err := cursor.All(ctx, results); err != nil {
		return domain.NewInternalServerError(fmt.Errorf("decode aggregate %s: %w", s.coll.Name(), err))
	}
	return nil
}

// Count conta os documentos que casam com o filtro.
func (s *DataStore) Count(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		return 0, missingOption("count", "filter")
	}
	n, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, domain.NewInternalServerError(fmt.Errorf("count %s: %w", s.coll.Name(), err))
	}
	return n, nil
}

func missingOption(operation, option string) *domain.Error {
	return domain.NewServiceError(fmt.Sprintf("operation %q requires option %q", operation, option))
}

// createError mapeia falhas de insert: violação de unicidade e documento
// rejeitado pelo validator da coleção têm tratamentos distintos.
func createError(collection string, err error) *domain.Error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.NewInternalServerError(fmt.Errorf("create %s: unique constraint violated: %w", collection, err))
	}
	if isDocumentValidationFailure(err) {
		return domain.NewValidationError("create operation failed", "Check the submitted data and try again.").WithCause(err)
	}
	return domain.NewInternalServerError(fmt.Errorf("create %s: %w", collection, err))
}

// 121 = DocumentValidationFailure.
func isDocumentValidationFailure(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 121 {
				return true
			}
		}
	}
	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if e.Code == 121 {
				return true
			}
		}
	}
	return false
}

func insertedID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return fmt.Sprintf("%v", v)
	}
}
