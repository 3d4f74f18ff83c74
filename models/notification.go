package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeAppealUpdate = "APPEAL_UPDATE"
	NotificationTypeSchedule     = "SCHEDULE"
	NotificationTypeSystem       = "SYSTEM"
)

type Notification struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	// Context
	AppealID *string `gorm:"type:uuid" json:"appeal_id,omitempty"`

	// Content
	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`
	LinkURL string `json:"link_url,omitempty"` // e.g., "/appeals/{appeal_id}"

	// Read tracking
	ReadAt *time.Time `json:"read_at,omitempty"`

	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Appeal *Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
