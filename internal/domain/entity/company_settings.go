package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultMaxTables is used when no company settings row exists yet.
const DefaultMaxTables = 12

// CompanySettings holds the single-row company configuration
type CompanySettings struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName string         `gorm:"size:255;not null" json:"company_name"`
	MaxTables   int            `gorm:"default:12" json:"max_tables"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *CompanySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanySettings model
func (CompanySettings) TableName() string {
	return "company_settings"
}
