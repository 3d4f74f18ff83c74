package services

import (
	"encoding/json"
	"fmt"
	"time"

	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// AuditContext carries the actor and request metadata captured by the audit
// middleware for the duration of one request.
type AuditContext struct {
	UserID    string
	UserName  string
	UserRole  string
	IPAddress string
	UserAgent string
}

// WriteAuditEntry appends one audit record. It must be called with the same
// transaction handle as the mutation it describes: the entry commits or
// rolls back atomically with the write.
func WriteAuditEntry(
	tx *gorm.DB,
	ctx AuditContext,
	action models.AuditAction,
	entityType string,
	entityID string,
	details interface{},
) error {
	var detailJSON string
	if details != nil {
		bytes, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode audit details: %w", err)
		}
		detailJSON = string(bytes)
	}

	entry := models.AuditLog{
		UserID:     ptrIfNotEmpty(ctx.UserID),
		UserName:   ctx.UserName,
		UserRole:   ctx.UserRole,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    detailJSON,
		IPAddress:  ctx.IPAddress,
		UserAgent:  ctx.UserAgent,
	}

	return tx.Create(&entry).Error
}

// ptrIfNotEmpty returns a pointer to the string if not empty, nil otherwise
func ptrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetEntityAuditHistory retrieves the audit history for a specific entity
func GetEntityAuditHistory(db *gorm.DB, entityType, entityID string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// AuditLogFilters contains filter options for audit log queries
type AuditLogFilters struct {
	UserID     string
	EntityType string
	Action     models.AuditAction
	DateFrom   time.Time
	DateTo     time.Time
}

// GetAuditLogs retrieves paginated audit logs
func GetAuditLogs(db *gorm.DB, filters AuditLogFilters, page, pageSize int) ([]models.AuditLog, int64, error) {
	query := db.Model(&models.AuditLog{})

	// Apply filters
	if filters.UserID != "" {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.EntityType != "" {
		query = query.Where("entity_type = ?", filters.EntityType)
	}
	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}
	if !filters.DateFrom.IsZero() {
		query = query.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		query = query.Where("created_at <= ?", filters.DateTo)
	}

	// Count total
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	var logs []models.AuditLog
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&logs).Error

	return logs, total, err
}
