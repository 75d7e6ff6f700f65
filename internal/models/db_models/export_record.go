package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExportRecord is one row per export event, written when an authenticated
// traveler downloads their trip summary. ExportData keeps the full
// preference snapshot as JSON.
type ExportRecord struct {
	BaseModel
	Filename     string
	ExportType   string    `gorm:"index"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	UserName     string
	UserEmail    string
	SelectedCity string
	Budget       string
	ExportData   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
