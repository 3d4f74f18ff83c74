package services

import (
	"errors"
	"strings"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// AssignPanelInput carries a panel assignment. Chair and second member are
// required; third member and mediator are optional.
type AssignPanelInput struct {
	PanelChair   string
	PanelMember2 string
	PanelMember3 *string
	Mediator     *string
	DateAssigned *time.Time
}

// AssignPanel records a panel composition for an appeal. All provided names
// must be pairwise distinct, compared case-insensitively: one person cannot
// hold two seats on the same panel.
func AssignPanel(db *gorm.DB, actx AuditContext, appealID string, in AssignPanelInput) (*models.PanelComposition, error) {
	in.PanelChair = SanitizePlain(in.PanelChair)
	in.PanelMember2 = SanitizePlain(in.PanelMember2)

	if in.PanelChair == "" {
		return nil, apperr.Validation("panel chair is required")
	}
	if in.PanelMember2 == "" {
		return nil, apperr.Validation("second panel member is required")
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	panel := models.PanelComposition{
		AppealID:     appeal.ID,
		PanelChair:   in.PanelChair,
		PanelMember2: in.PanelMember2,
		PanelMember3: in.PanelMember3,
		Mediator:     in.Mediator,
		DateAssigned: in.DateAssigned,
	}
	if panel.DateAssigned == nil {
		now := time.Now()
		panel.DateAssigned = &now
	}

	if dup := duplicateName(panel.Names()); dup != "" {
		return nil, apperr.Validation("%s cannot hold more than one seat on the panel", dup)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&panel).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "PanelComposition", panel.ID, map[string]interface{}{
			"appeal_id":   appeal.ID,
			"panel_chair": panel.PanelChair,
			"members":     panel.Names(),
		})
	})
	if err != nil {
		return nil, err
	}

	return &panel, nil
}

// CurrentPanel returns the most recently assigned panel for an appeal, or a
// not-found error when none has been assigned.
func CurrentPanel(db *gorm.DB, appealID string) (*models.PanelComposition, error) {
	var panel models.PanelComposition
	err := db.
		Where("appeal_id = ?", appealID).
		Order("created_at DESC").
		First(&panel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no panel assigned to this appeal")
		}
		return nil, err
	}
	return &panel, nil
}

// RemovePanel deletes a panel composition from an appeal.
func RemovePanel(db *gorm.DB, actx AuditContext, appealID, panelID string) error {
	var panel models.PanelComposition
	err := db.First(&panel, "id = ? AND appeal_id = ?", panelID, appealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("panel not found on this appeal")
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&panel).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionDelete, "PanelComposition", panel.ID, map[string]interface{}{
			"appeal_id": appealID,
		})
	})
}

// duplicateName returns the first name that appears more than once in the
// slice, ignoring case, or "" when all names are distinct.
func duplicateName(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		if seen[key] {
			return n
		}
		seen[key] = true
	}
	return ""
}
