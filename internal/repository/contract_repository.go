package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const contractCollection = "contracts"

// ContractRepository encapsulates contract persistence.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	List(ctx context.Context, companyID *string) ([]domain.Contract, error)
	ListActiveByCompany(ctx context.Context, companyID string) ([]domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	Delete(ctx context.Context, id string) error
}

type contractRepository struct {
	collection *mongo.Collection
}

// NewContractRepository instantiates the repository.
func NewContractRepository(db *mongo.Database) ContractRepository {
	return &contractRepository{collection: db.Collection(contractCollection)}
}

func (r *contractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	_, err := r.collection.InsertOne(ctx, encodeContract(contract))
	return err
}

func (r *contractRepository) List(ctx context.Context, companyID *string) ([]domain.Contract, error) {
	query := bson.M{}
	if companyID != nil {
		query["company_id"] = *companyID
	}
	return r.find(ctx, query, nil)
}

// ListActiveByCompany returns every active contract for the company, sorted
// by id so iteration is deterministic. An empty result is not an error.
func (r *contractRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]domain.Contract, error) {
	query := bson.M{
		"company_id": companyID,
		"status":     string(domain.ContractStatusActive),
	}
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	return r.find(ctx, query, opts)
}

func (r *contractRepository) Update(ctx context.Context, contract *domain.Contract) error {
	set := bson.M{
		"company_id": contract.CompanyID,
		"service_id": contract.ServiceID,
		"start_date": contract.StartDate,
		"end_date":   contract.EndDate,
		"sla_hours":  contract.SLAHours,
		"terms":      contract.Terms,
		"status":     string(contract.Status),
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": contract.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *contractRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]domain.Contract, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, query, opts)
	} else {
		cursor, err = r.collection.Find(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Contract
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		contract, err := decodeContract(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *contract)
	}
	return result, cursor.Err()
}

func encodeContract(contract *domain.Contract) bson.M {
	return bson.M{
		"id":         contract.ID,
		"company_id": contract.CompanyID,
		"service_id": contract.ServiceID,
		"start_date": contract.StartDate,
		"end_date":   contract.EndDate,
		"sla_hours":  contract.SLAHours,
		"terms":      contract.Terms,
		"status":     string(contract.Status),
		"created_at": encodeTime(contract.CreatedAt),
	}
}

func decodeContract(doc bson.M) (*domain.Contract, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Contract{
		ID:        docString(doc, "id"),
		CompanyID: docString(doc, "company_id"),
		ServiceID: docString(doc, "service_id"),
		StartDate: docString(doc, "start_date"),
		EndDate:   docString(doc, "end_date"),
		SLAHours:  docInt(doc, "sla_hours"),
		Terms:     docString(doc, "terms"),
		Status:    domain.ContractStatus(docString(doc, "status")),
		CreatedAt: createdAt,
	}, nil
}
