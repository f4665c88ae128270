package domain

import "time"

// SystemConfigID is the well-known id of the singleton config document.
const SystemConfigID = "system_config"

// SystemConfig holds branding and presentation settings used by reports.
type SystemConfig struct {
	ID          string
	LogoBase64  *string
	CompanyName string
	UpdatedAt   time.Time
}
