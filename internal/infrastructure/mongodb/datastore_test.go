package mongodb

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caramelo-app/caramelo-api-sub001/internal/domain"
)

// newOfflineStore monta um DataStore sem servidor: a conexão do driver é
// preguiçosa, e as checagens de opção obrigatória acontecem antes de qualquer
// operação de rede.
func newOfflineStore(t *testing.T) *DataStore {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewDataStore(client.Database("caramelo_test"), "things")
}

func requireServiceError(t *testing.T, err error, operation, option string) {
	t.Helper()
	de, ok := domain.AsError(err)
	require.True(t, ok, "esperado erro de domínio, veio: %v", err)
	assert.Equal(t, "ServiceError", de.Name)
	assert.Contains(t, de.Message, fmt.Sprintf("%q", operation))
	assert.Contains(t, de.Message, fmt.Sprintf("%q", option))
}

// ──────────────────────────────────────────────────────────────────────────────
// Opções obrigatórias: cada operação nomeia a opção ausente em um ServiceError
// ──────────────────────────────────────────────────────────────────────────────

func TestReadOne_SemFiltro(t *testing.T) {
	store := newOfflineStore(t)
	var out map[string]interface{}

	_, err := store.ReadOne(context.Background(), nil, nil, &out)
	requireServiceError(t, err, "readOne", "filter")
}

func TestCreate_SemDados(t *testing.T) {
	store := newOfflineStore(t)

	_, err := store.Create(context.Background(), nil)
	requireServiceError(t, err, "create", "data")
}

func TestCreateMany_SemDados(t *testing.T) {
	store := newOfflineStore(t)

	_, err := store.CreateMany(context.Background(), nil)
	requireServiceError(t, err, "createMany", "data")

	_, err = store.CreateMany(context.Background(), []interface{}{})
	requireServiceError(t, err, "createMany", "data")
}

func TestUpdateOne_OpcoesObrigatorias(t *testing.T) {
	store := newOfflineStore(t)

	_, err := store.UpdateOne(context.Background(), nil, map[string]interface{}{"a": 1})
	requireServiceError(t, err, "updateOne", "filter")

	_, err = store.UpdateOne(context.Background(), map[string]interface{}{"a": 1}, nil)
	requireServiceError(t, err, "updateOne", "data")
}

func TestUpdateMany_OpcoesObrigatorias(t *testing.T) {
	store := newOfflineStore(t)

	matched, modified, err := store.UpdateMany(context.Background(), nil, map[string]interface{}{"a": 1})
	requireServiceError(t, err, "updateMany", "filter")
	assert.Zero(t, matched)
	assert.Zero(t, modified)

	_, _, err = store.UpdateMany(context.Background(), map[string]interface{}{"a": 1}, nil)
	requireServiceError(t, err, "updateMany", "data")
}

func TestRemove_SemFiltro(t *testing.T) {
	store := newOfflineStore(t)

	_, err := store.Remove(context.Background(), nil)
	requireServiceError(t, err, "remove", "filter")
}

func TestAggregate_SemPipeline(t *testing.T) {
	store := newOfflineStore(t)
	var out []map[string]interface{}

	err := store.Aggregate(context.Background(), nil, &out)
	requireServiceError(t, err, "aggregate", "pipeline")
}

func TestCount_SemFiltro(t *testing.T) {
	store := newOfflineStore(t)

	_, err := store.Count(context.Background(), nil)
	requireServiceError(t, err, "count", "filter")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeamento de erros de insert
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateError_ChaveDuplicada(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	require.True(t, mongo.IsDuplicateKeyError(dup))

	err := createError("users", dup)
	assert.Equal(t, "InternalServerError", err.Name)
	assert.Equal(t, "an internal error occurred", err.Message, "violação de unicidade não vaza detalhe ao cliente")
}

func TestCreateError_ValidatorDaColecao(t *testing.T) {
	rejected := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121, Message: "Document failed validation"}}}

	err := createError("credits", rejected)
	assert.Equal(t, "ValidationError", err.Name)
	assert.Equal(t, "create operation failed", err.Message)
}

func TestCreateError_FalhaGenerica(t *testing.T) {
	cause := errors.New("connection reset")

	err := createError("cards", cause)
	assert.Equal(t, "InternalServerError", err.Name)
	assert.ErrorIs(t, err, cause)
}

func TestIsDocumentValidationFailure(t *testing.T) {
	assert.True(t, isDocumentValidationFailure(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 121}},
	}))
	assert.True(t, isDocumentValidationFailure(mongo.BulkWriteException{
		WriteErrors: []mongo.BulkWriteError{{WriteError: mongo.WriteError{Code: 121}}},
	}))
	assert.False(t, isDocumentValidationFailure(mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}))
	assert.False(t, isDocumentValidationFailure(errors.New("qualquer")))
}

func TestInsertedID(t *testing.T) {
	assert.Equal(t, "abc", insertedID("abc"))

	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), insertedID(oid))
}
