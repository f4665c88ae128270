package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const managedServiceCollection = "services"

// ManagedServiceRepository encapsulates managed service persistence.
type ManagedServiceRepository interface {
	Create(ctx context.Context, svc *domain.ManagedService) error
	GetByID(ctx context.Context, id string) (*domain.ManagedService, error)
	List(ctx context.Context, companyID *string) ([]domain.ManagedService, error)
	Update(ctx context.Context, svc *domain.ManagedService) error
	Delete(ctx context.Context, id string) error
}

type managedServiceRepository struct {
	collection *mongo.Collection
}

// NewManagedServiceRepository instantiates the repository.
func NewManagedServiceRepository(db *mongo.Database) ManagedServiceRepository {
	return &managedServiceRepository{collection: db.Collection(managedServiceCollection)}
}

func (r *managedServiceRepository) Create(ctx context.Context, svc *domain.ManagedService) error {
	_, err := r.collection.InsertOne(ctx, encodeManagedService(svc))
	return err
}

func (r *managedServiceRepository) GetByID(ctx context.Context, id string) (*domain.ManagedService, error) {
	var doc bson.M
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return decodeManagedService(doc)
}

func (r *managedServiceRepository) List(ctx context.Context, companyID *string) ([]domain.ManagedService, error) {
	query := bson.M{}
	if companyID != nil {
		query["company_id"] = *companyID
	}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.ManagedService
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		svc, err := decodeManagedService(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	return result, cursor.Err()
}

func (r *managedServiceRepository) Update(ctx context.Context, svc *domain.ManagedService) error {
	set := encodeManagedService(svc)
	delete(set, "id")
	delete(set, "created_at")
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *managedServiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func encodeManagedService(svc *domain.ManagedService) bson.M {
	return bson.M{
		"id":                svc.ID,
		"company_id":        svc.CompanyID,
		"service_type":      encodeStringPtr(svc.ServiceType),
		"service_name":      svc.ServiceName,
		"description":       encodeStringPtr(svc.Description),
		"start_date":        encodeStringPtr(svc.StartDate),
		"expiration_date":   encodeStringPtr(svc.ExpirationDate),
		"billing_period":    encodeStringPtr(svc.BillingPeriod),
		"cost":              encodeStringPtr(svc.Cost),
		"external_provider": encodeStringPtr(svc.ExternalProvider),
		"associated_domain": encodeStringPtr(svc.AssociatedDomain),
		"created_at":        encodeTime(svc.CreatedAt),
	}
}

func decodeManagedService(doc bson.M) (*domain.ManagedService, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.ManagedService{
		ID:               docString(doc, "id"),
		CompanyID:        docString(doc, "company_id"),
		ServiceType:      docStringPtr(doc, "service_type"),
		ServiceName:      docString(doc, "service_name"),
		Description:      docStringPtr(doc, "description"),
		StartDate:        docStringPtr(doc, "start_date"),
		ExpirationDate:   docStringPtr(doc, "expiration_date"),
		BillingPeriod:    docStringPtr(doc, "billing_period"),
		Cost:             docStringPtr(doc, "cost"),
		ExternalProvider: docStringPtr(doc, "external_provider"),
		AssociatedDomain: docStringPtr(doc, "associated_domain"),
		CreatedAt:        createdAt,
	}, nil
}
