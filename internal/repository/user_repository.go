package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const userCollection = "users"

// UserRepository encapsulates user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository instantiates the repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection(userCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.collection.InsertOne(ctx, bson.M{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"role":          string(user.Role),
		"company_id":    encodeStringPtr(user.CompanyID),
		"password_hash": user.PasswordHash,
		"created_at":    encodeTime(user.CreatedAt),
	})
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.fetchOne(ctx, bson.M{"id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.fetchOne(ctx, bson.M{"email": email})
}

func (r *userRepository) fetchOne(ctx context.Context, query bson.M) (*domain.User, error) {
	var doc bson.M
	if err := r.collection.FindOne(ctx, query).Decode(&doc); err != nil {
		return nil, err
	}
	return decodeUser(doc)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.User
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		user, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, cursor.Err()
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func decodeUser(doc bson.M) (*domain.User, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           docString(doc, "id"),
		Email:        docString(doc, "email"),
		Name:         docString(doc, "name"),
		Role:         domain.Role(docString(doc, "role")),
		CompanyID:    docStringPtr(doc, "company_id"),
		PasswordHash: docString(doc, "password_hash"),
		CreatedAt:    createdAt,
	}, nil
}
