package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const systemConfigCollection = "system_config"

// SystemConfigRepository handles the singleton branding document.
type SystemConfigRepository interface {
	Get(ctx context.Context) (*domain.SystemConfig, error)
	Upsert(ctx context.Context, cfg *domain.SystemConfig) error
}

type systemConfigRepository struct {
	collection *mongo.Collection
}

// NewSystemConfigRepository instantiates the repository.
func NewSystemConfigRepository(db *mongo.Database) SystemConfigRepository {
	return &systemConfigRepository{collection: db.Collection(systemConfigCollection)}
}

func (r *systemConfigRepository) Get(ctx context.Context) (*domain.SystemConfig, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"id": domain.SystemConfigID}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	updatedAt, err := decodeTime(doc["updated_at"])
	if err != nil {
		return nil, err
	}
	return &domain.SystemConfig{
		ID:          docString(doc, "id"),
		LogoBase64:  docStringPtr(doc, "logo_base64"),
		CompanyName: docString(doc, "company_name"),
		UpdatedAt:   updatedAt,
	}, nil
}

func (r *systemConfigRepository) Upsert(ctx context.Context, cfg *domain.SystemConfig) error {
	set := bson.M{
		"logo_base64":  encodeStringPtr(cfg.LogoBase64),
		"company_name": cfg.CompanyName,
		"updated_at":   encodeTime(cfg.UpdatedAt),
	}
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"id": domain.SystemConfigID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}
