package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportHistory records one legacy workbook import run.
type ImportHistory struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FileName        string  `gorm:"not null" json:"file_name"`
	RecordsImported int     `gorm:"not null;default:0" json:"records_imported"`
	RecordsFailed   int     `gorm:"not null;default:0" json:"records_failed"`
	Status          string  `gorm:"size:20;not null;default:Success" json:"status"`
	ErrorMessage    *string `gorm:"type:text" json:"error_message,omitempty"`
	ImportedBy      string  `gorm:"size:100;not null;default:import_tool" json:"imported_by"`
}

func (ih *ImportHistory) BeforeCreate(tx *gorm.DB) error {
	if ih.ID == "" {
		ih.ID = uuid.New().String()
	}
	return nil
}

func (ImportHistory) TableName() string {
	return "import_history"
}
