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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação da porta UserRepository sobre MongoDB.
type UserRepo struct {
	store *DataStore
}

// NewUserRepository constrói o adaptador de persistência para usuários.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{store: NewDataStore(db, UsersCollection)}
}

// Create persiste um novo usuário. Id gerado aqui quando vazio.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.store.Create(ctx, user)
	return err
}

// GetByID obtém um usuário por id; (nil, nil) quando não existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	found, err := r.store.ReadOne(ctx, bson.M{"_id": id}, nil, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// GetByPhone obtém um usuário não excluído por telefone; (nil, nil) quando não existe.
func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var u entity.User
	found, err := r.store.ReadOne(ctx, bson.M{"phone": phone, "excluded": false}, nil, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// Update persiste os campos mutáveis do usuário, incluindo o par de recuperação.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.store.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"name":                     user.Name,
		"phone":                    user.Phone,
		"password":                 user.Password,
		"role":                     user.Role,
		"company_id":               user.CompanyID,
		"status":                   user.Status,
		"excluded":                 user.Excluded,
		"recover_token":            user.RecoverToken,
		"recover_token_expires_at": user.RecoverTokenExpiresAt,
		"updated_at":               user.UpdatedAt,
	}})
	return err
}

// SoftDelete marca o usuário como excluído e indisponível, de forma permanente.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.store.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"excluded":   true,
		"status":     entity.StatusUnavailable,
		"updated_at": time.Now(),
	}})
	return err
}
