package entity

import (
	"time"

	"github.com/dcamacho/barkeep-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a staff account. Sign-in is by username rather
// than email; the bar has a single shared terminal.
type Profile struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string         `gorm:"size:255;not null" json:"full_name"`
	UserName    string         `gorm:"size:255;unique;not null" json:"user_name"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	Role        string         `gorm:"size:50;default:'waiter'" json:"role"`
	NumberPhone *string        `gorm:"size:50" json:"number_phone,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}

// IsAdmin reports whether the profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == enum.RoleAdmin
}
