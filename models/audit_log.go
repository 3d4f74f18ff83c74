package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditAction represents the type of operation performed
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionSchedule AuditAction = "SCHEDULE"
	AuditActionUpload   AuditAction = "UPLOAD"
	AuditActionDownload AuditAction = "DOWNLOAD"
	AuditActionLogin    AuditAction = "LOGIN"
)

// AuditLog is an immutable, append-only record of a write operation. Every
// successful mutation commits exactly one entry in the same transaction.
type AuditLog struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_audit_created_at" json:"created_at"`

	// Actor identification
	UserID   *string `gorm:"type:uuid;index:idx_audit_user" json:"user_id,omitempty"`
	UserName string  `gorm:"not null" json:"user_name"` // Denormalized for historical accuracy
	UserRole string  `json:"user_role"`                 // Denormalized

	// Target entity
	EntityType string `gorm:"size:50;not null;index:idx_audit_entity" json:"entity_type"` // e.g., "Appeal", "Order"
	EntityID   string `gorm:"type:uuid;not null;index:idx_audit_entity" json:"entity_id"`

	// Operation details
	Action  AuditAction `gorm:"size:50;not null;index:idx_audit_action" json:"action"`
	Details string      `gorm:"type:text" json:"details,omitempty"` // JSON encoded payload

	// Request metadata
	IPAddress string `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// BeforeCreate generates UUID
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// BeforeUpdate prevents modification of audit logs (immutability)
func (a *AuditLog) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any updates
}

// BeforeDelete prevents deletion of audit logs (immutability)
func (a *AuditLog) BeforeDelete(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any deletes
}

// TableName specifies the table name
func (AuditLog) TableName() string {
	return "audit_log"
}
