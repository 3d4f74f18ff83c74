package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization is a settlement council, company, or other body that can be
// a party to an appeal.
type Organization struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string  `gorm:"size:200;not null;index" json:"name"`
	Contact    *string `gorm:"size:100" json:"contact,omitempty"`
	Address1   *string `gorm:"size:200" json:"address_1,omitempty"`
	Address2   *string `gorm:"size:200" json:"address_2,omitempty"`
	City       *string `gorm:"size:100" json:"city,omitempty"`
	Province   *string `gorm:"size:50" json:"province,omitempty"`
	PostalCode *string `gorm:"size:20" json:"postal_code,omitempty"`
	Phone      *string `gorm:"size:30" json:"phone,omitempty"`
	Fax        *string `gorm:"size:30" json:"fax,omitempty"`
	Email      *string `gorm:"size:255" json:"email,omitempty"`
	Notes      *string `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate UUID
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Organization model
func (Organization) TableName() string {
	return "organizations"
}
