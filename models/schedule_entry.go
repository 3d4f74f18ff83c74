package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule entry types
const (
	EntryTypeOral      = "Oral"
	EntryTypeMediation = "Mediation"
)

// ScheduleEntry is one scheduled mediation or oral hearing for an appeal.
type ScheduleEntry struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AppealID string `gorm:"type:uuid;not null;index" json:"appeal_id"`
	Appeal   Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`

	EntryType string    `gorm:"size:50;not null;default:Oral" json:"entry_type"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Time      *string   `gorm:"size:20" json:"time,omitempty"`
	Location  *string   `gorm:"type:text" json:"location,omitempty"`
	IsPublic  bool      `gorm:"not null" json:"is_public"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	Outcome   *string   `gorm:"size:50" json:"outcome,omitempty"`
}

// BeforeCreate hook to generate UUID
func (se *ScheduleEntry) BeforeCreate(tx *gorm.DB) error {
	if se.ID == "" {
		se.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for ScheduleEntry model
func (ScheduleEntry) TableName() string {
	return "hearing_schedule"
}
