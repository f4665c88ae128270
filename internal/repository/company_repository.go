package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const companyCollection = "companies"

// CompanyRepository encapsulates company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, onlyID *string) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type companyRepository struct {
	collection *mongo.Collection
}

// NewCompanyRepository instantiates the repository.
func NewCompanyRepository(db *mongo.Database) CompanyRepository {
	return &companyRepository{collection: db.Collection(companyCollection)}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	_, err := r.collection.InsertOne(ctx, encodeCompany(company))
	return err
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	var doc bson.M
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return decodeCompany(doc)
}

// List returns all companies, or just the one named by onlyID when a client
// caller is restricted to their own organization.
func (r *companyRepository) List(ctx context.Context, onlyID *string) ([]domain.Company, error) {
	query := bson.M{}
	if onlyID != nil {
		query["id"] = *onlyID
	}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Company
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		company, err := decodeCompany(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *company)
	}
	return result, cursor.Err()
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	set := bson.M{
		"name":           company.Name,
		"contact_person": company.ContactPerson,
		"email":          company.Email,
		"phone":          company.Phone,
		"address":        company.Address,
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": company.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func encodeCompany(company *domain.Company) bson.M {
	return bson.M{
		"id":             company.ID,
		"name":           company.Name,
		"contact_person": company.ContactPerson,
		"email":          company.Email,
		"phone":          company.Phone,
		"address":        company.Address,
		"created_at":     encodeTime(company.CreatedAt),
	}
}

func decodeCompany(doc bson.M) (*domain.Company, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Company{
		ID:            docString(doc, "id"),
		Name:          docString(doc, "name"),
		ContactPerson: docString(doc, "contact_person"),
		Email:         docString(doc, "email"),
		Phone:         docString(doc, "phone"),
		Address:       docString(doc, "address"),
		CreatedAt:     createdAt,
	}, nil
}
