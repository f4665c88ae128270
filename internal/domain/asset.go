package domain

import "time"

// AssetStatus enumerates operational states of a managed asset.
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusRetired  AssetStatus = "retired"
	AssetStatusInRepair AssetStatus = "in_repair"
)

// Asset is a hardware or software item tracked for a company.
type Asset struct {
	ID        string
	CompanyID string

	AssetType    *string
	Manufacturer *string
	Model        *string
	SerialNumber *string
	HostName     *string

	Location        *string
	Status          AssetStatus
	IPAddress       *string
	OperatingSystem *string
	OSVersion       *string

	CPUProcessor        *string
	RAMGB               *string
	StorageTypeCapacity *string

	PurchaseDate       *string
	WarrantyExpiration *string
	SupportProvider    *string

	Notes     *string
	CreatedAt time.Time
}
