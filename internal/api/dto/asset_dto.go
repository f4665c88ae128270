package dto

import (
	"time"

	"github.com/spec-kit/itsm-backoffice/internal/domain"
)

// AssetRequest payload for create and update.
type AssetRequest struct {
	CompanyID           string  `json:"company_id"`
	AssetType           *string `json:"asset_type,omitempty"`
	Manufacturer        *string `json:"manufacturer,omitempty"`
	Model               *string `json:"model,omitempty"`
	SerialNumber        *string `json:"serial_number,omitempty"`
	HostName            *string `json:"host_name,omitempty"`
	Location            *string `json:"location,omitempty"`
	Status              *string `json:"status,omitempty"`
	IPAddress           *string `json:"ip_address,omitempty"`
	OperatingSystem     *string `json:"operating_system,omitempty"`
	OSVersion           *string `json:"os_version,omitempty"`
	CPUProcessor        *string `json:"cpu_processor,omitempty"`
	RAMGB               *string `json:"ram_gb,omitempty"`
	StorageTypeCapacity *string `json:"storage_type_capacity,omitempty"`
	PurchaseDate        *string `json:"purchase_date,omitempty"`
	WarrantyExpiration  *string `json:"warranty_expiration,omitempty"`
	SupportProvider     *string `json:"support_provider,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// AssetResponse response.
type AssetResponse struct {
	ID                  string             `json:"id"`
	CompanyID           string             `json:"company_id"`
	AssetType           *string            `json:"asset_type,omitempty"`
	Manufacturer        *string            `json:"manufacturer,omitempty"`
	Model               *string            `json:"model,omitempty"`
	SerialNumber        *string            `json:"serial_number,omitempty"`
	HostName            *string            `json:"host_name,omitempty"`
	Location            *string            `json:"location,omitempty"`
	Status              domain.AssetStatus `json:"status"`
	IPAddress           *string            `json:"ip_address,omitempty"`
	OperatingSystem     *string            `json:"operating_system,omitempty"`
	OSVersion           *string            `json:"os_version,omitempty"`
	CPUProcessor        *string            `json:"cpu_processor,omitempty"`
	RAMGB               *string            `json:"ram_gb,omitempty"`
	StorageTypeCapacity *string            `json:"storage_type_capacity,omitempty"`
	PurchaseDate        *string            `json:"purchase_date,omitempty"`
	WarrantyExpiration  *string            `json:"warranty_expiration,omitempty"`
	SupportProvider     *string            `json:"support_provider,omitempty"`
	Notes               *string            `json:"notes,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
}

// ToAsset maps the request onto a domain asset. Status defaults to active.
func (r AssetRequest) ToAsset() *domain.Asset {
	status := domain.AssetStatusActive
	if r.Status != nil {
		status = domain.AssetStatus(*r.Status)
	}
	return &domain.Asset{
		CompanyID:           r.CompanyID,
		AssetType:           r.AssetType,
		Manufacturer:        r.Manufacturer,
		Model:               r.Model,
		SerialNumber:        r.SerialNumber,
		HostName:            r.HostName,
		Location:            r.Location,
		Status:              status,
		IPAddress:           r.IPAddress,
		OperatingSystem:     r.OperatingSystem,
		OSVersion:           r.OSVersion,
		CPUProcessor:        r.CPUProcessor,
		RAMGB:               r.RAMGB,
		StorageTypeCapacity: r.StorageTypeCapacity,
		PurchaseDate:        r.PurchaseDate,
		WarrantyExpiration:  r.WarrantyExpiration,
		SupportProvider:     r.SupportProvider,
		Notes:               r.Notes,
	}
}

// NewAssetResponse maps a domain asset.
func NewAssetResponse(asset *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:                  asset.ID,
		CompanyID:           asset.CompanyID,
		AssetType:           asset.AssetType,
		Manufacturer:        asset.Manufacturer,
		Model:               asset.Model,
		SerialNumber:        asset.SerialNumber,
		HostName:            asset.HostName,
		Location:            asset.Location,
		Status:              asset.Status,
		IPAddress:           asset.IPAddress,
		OperatingSystem:     asset.OperatingSystem,
		OSVersion:           asset.OSVersion,
		CPUProcessor:        asset.CPUProcessor,
		RAMGB:               asset.RAMGB,
		StorageTypeCapacity: asset.StorageTypeCapacity,
		PurchaseDate:        asset.PurchaseDate,
		WarrantyExpiration:  asset.WarrantyExpiration,
		SupportProvider:     asset.SupportProvider,
		Notes:               asset.Notes,
		CreatedAt:           asset.CreatedAt,
	}
}
