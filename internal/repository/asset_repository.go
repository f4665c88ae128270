package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

const assetCollection = "assets"

// AssetFilter captures asset listing parameters.
type AssetFilter struct {
	CompanyID *string
	Status    *domain.AssetStatus
	AssetType *string
}

// AssetRepository encapsulates asset persistence.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context, filter AssetFilter) ([]domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, companyID *string, status *domain.AssetStatus) (int64, error)
}

type assetRepository struct {
	collection *mongo.Collection
}

// NewAssetRepository instantiates the repository.
func NewAssetRepository(db *mongo.Database) AssetRepository {
	return &assetRepository{collection: db.Collection(assetCollection)}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	_, err := r.collection.InsertOne(ctx, encodeAsset(asset))
	return err
}

func (r *assetRepository) GetByID(ctx context.Context, id string) (*domain.Asset, error) {
	var doc bson.M
	if err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return decodeAsset(doc)
}

func (r *assetRepository) List(ctx context.Context, filter AssetFilter) ([]domain.Asset, error) {
	cursor, err := r.collection.Find(ctx, assetQuery(filter))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []domain.Asset
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		asset, err := decodeAsset(doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *asset)
	}
	return result, cursor.Err()
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	set := encodeAsset(asset)
	delete(set, "id")
	delete(set, "created_at")
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": asset.ID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *assetRepository) Count(ctx context.Context, companyID *string, status *domain.AssetStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, assetQuery(AssetFilter{CompanyID: companyID, Status: status}))
}

func assetQuery(filter AssetFilter) bson.M {
	query := bson.M{}
	if filter.CompanyID != nil {
		query["company_id"] = *filter.CompanyID
	}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.AssetType != nil {
		query["asset_type"] = *filter.AssetType
	}
	return query
}

func encodeAsset(asset *domain.Asset) bson.M {
	return bson.M{
		"id":                    asset.ID,
		"company_id":            asset.CompanyID,
		"asset_type":            encodeStringPtr(asset.AssetType),
		"manufacturer":          encodeStringPtr(asset.Manufacturer),
		"model":                 encodeStringPtr(asset.Model),
		"serial_number":         encodeStringPtr(asset.SerialNumber),
		"host_name":             encodeStringPtr(asset.HostName),
		"location":              encodeStringPtr(asset.Location),
		"status":                string(asset.Status),
		"ip_address":            encodeStringPtr(asset.IPAddress),
		"operating_system":      encodeStringPtr(asset.OperatingSystem),
		"os_version":            encodeStringPtr(asset.OSVersion),
		"cpu_processor":         encodeStringPtr(asset.CPUProcessor),
		"ram_gb":                encodeStringPtr(asset.RAMGB),
		"storage_type_capacity": encodeStringPtr(asset.StorageTypeCapacity),
		"purchase_date":         encodeStringPtr(asset.PurchaseDate),
		"warranty_expiration":   encodeStringPtr(asset.WarrantyExpiration),
		"support_provider":      encodeStringPtr(asset.SupportProvider),
		"notes":                 encodeStringPtr(asset.Notes),
		"created_at":            encodeTime(asset.CreatedAt),
	}
}

func decodeAsset(doc bson.M) (*domain.Asset, error) {
	createdAt, err := decodeTime(doc["created_at"])
	if err != nil {
		return nil, err
	}
	return &domain.Asset{
		ID:                  docString(doc, "id"),
		CompanyID:           docString(doc, "company_id"),
		AssetType:           docStringPtr(doc, "asset_type"),
		Manufacturer:        docStringPtr(doc, "manufacturer"),
		Model:               docStringPtr(doc, "model"),
		SerialNumber:        docStringPtr(doc, "serial_number"),
		HostName:            docStringPtr(doc, "host_name"),
		Location:            docStringPtr(doc, "location"),
		Status:              domain.AssetStatus(docString(doc, "status")),
		IPAddress:           docStringPtr(doc, "ip_address"),
		OperatingSystem:     docStringPtr(doc, "operating_system"),
		OSVersion:           docStringPtr(doc, "os_version"),
		CPUProcessor:        docStringPtr(doc, "cpu_processor"),
		RAMGB:               docStringPtr(doc, "ram_gb"),
		StorageTypeCapacity: docStringPtr(doc, "storage_type_capacity"),
		PurchaseDate:        docStringPtr(doc, "purchase_date"),
		WarrantyExpiration:  docStringPtr(doc, "warranty_expiration"),
		SupportProvider:     docStringPtr(doc, "support_provider"),
		Notes:               docStringPtr(doc, "notes"),
		CreatedAt:           createdAt,
	}, nil
}
