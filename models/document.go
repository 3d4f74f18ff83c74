package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document categories
const (
	DocumentCategoryGeneral        = "General"
	DocumentCategoryEvidence       = "Evidence"
	DocumentCategoryCorrespondence = "Correspondence"
	DocumentCategoryHearingPackage = "Hearing Package"
	DocumentCategoryOrder          = "Order"
)

// Document is a file stored against an appeal.
type Document struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AppealID string `gorm:"type:uuid;not null;index" json:"appeal_id"`
	Appeal   Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`

	FileName    string  `gorm:"not null" json:"file_name"`
	FileType    *string `gorm:"size:20" json:"file_type,omitempty"`
	FileSize    int64   `gorm:"not null;default:0" json:"file_size"`
	StorageKey  string  `gorm:"not null" json:"-"`
	Category    string  `gorm:"size:50;not null;default:General" json:"category"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	UploadedBy *string `gorm:"type:uuid" json:"uploaded_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Document model
func (Document) TableName() string {
	return "documents"
}
