package services

import (
	"errors"
	"strings"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// CreateAppealInput contains the fields required to file a new appeal.
type CreateAppealInput struct {
	SettlementID      string
	IssueType         string
	Description       string
	PrimaryStaff      string
	AppellantClientID string
	LegalDescription  *string
	ContactDate       *time.Time
}

// CreateAppeal files a new appeal: resolves the settlement, allocates the
// file number, inserts the appeal with status Active / stage 1, links the
// appellant as the initial Applicant party, and writes the audit entry.
// Everything happens in one transaction; any failure rolls back the file
// number allocation together with the rest.
func CreateAppeal(db *gorm.DB, actx AuditContext, in CreateAppealInput) (*models.Appeal, error) {
	in.IssueType = SanitizePlain(in.IssueType)
	in.Description = SanitizeRichText(in.Description)
	in.PrimaryStaff = SanitizePlain(in.PrimaryStaff)

	if in.SettlementID == "" {
		return nil, apperr.Validation("settlement is required")
	}
	if in.IssueType == "" {
		return nil, apperr.Validation("issue type is required")
	}
	if in.Description == "" {
		return nil, apperr.Validation("description is required")
	}
	if in.PrimaryStaff == "" {
		return nil, apperr.Validation("primary staff is required")
	}
	if in.AppellantClientID == "" {
		return nil, apperr.Validation("appellant client is required")
	}

	settlement, err := GetSettlement(db, in.SettlementID)
	if err != nil {
		return nil, err
	}

	known, err := IssueTypeExists(db, in.IssueType)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.Validation("unknown issue type %q", in.IssueType)
	}

	var client models.Client
	if err := db.First(&client, "id = ?", in.AppellantClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appellant client not found")
		}
		return nil, err
	}

	var appeal models.Appeal
	err = db.Transaction(func(tx *gorm.DB) error {
		fileNumber, err := NextFileNumber(tx, settlement.SortOrder, time.Now().Year())
		if err != nil {
			return err
		}

		now := time.Now()
		appeal = models.Appeal{
			FileNumber:       fileNumber,
			IssueType:        in.IssueType,
			Description:      in.Description,
			LegalDescription: in.LegalDescription,
			Status:           models.StatusActive,
			Stage:            models.Stage1,
			ContactDate:      in.ContactDate,
			PrimaryStaff:     in.PrimaryStaff,
		}
		if appeal.ContactDate == nil {
			appeal.ContactDate = &now
		}

		if err := tx.Create(&appeal).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "file number %s already exists", fileNumber)
			}
			return err
		}

		party := models.AppealParty{
			AppealID:  appeal.ID,
			ClientID:  &in.AppellantClientID,
			PartyType: models.PartyTypeApplicant,
		}
		if err := tx.Create(&party).Error; err != nil {
			return err
		}

		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "Appeal", appeal.ID, map[string]interface{}{
			"file_number": appeal.FileNumber,
			"settlement":  settlement.Name,
			"issue_type":  appeal.IssueType,
			"status":      appeal.Status,
			"stage":       appeal.Stage,
		})
	})
	if err != nil {
		return nil, err
	}

	return &appeal, nil
}

// GetAppeal fetches an appeal by ID with its relationships preloaded.
func GetAppeal(db *gorm.DB, id string) (*models.Appeal, error) {
	var appeal models.Appeal
	err := db.
		Preload("Parties.Client").
		Preload("Parties.Organization").
		Preload("Panels").
		Preload("Schedule").
		Preload("Orders.Subjects").
		Preload("Documents").
		First(&appeal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appeal not found")
		}
		return nil, err
	}
	return &appeal, nil
}

// getAppealForUpdate fetches the bare appeal row without preloads.
func getAppealForUpdate(db *gorm.DB, id string) (*models.Appeal, error) {
	var appeal models.Appeal
	if err := db.First(&appeal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appeal not found")
		}
		return nil, err
	}
	return &appeal, nil
}

// SetStatus validates and applies a status change. Setting the current
// status again is a no-op: success, no mutation, no audit entry. Entering
// "On Hold" stamps on_hold_start; leaving it stamps on_hold_end.
func SetStatus(db *gorm.DB, actx AuditContext, appealID, status string) (*models.Appeal, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperr.Validation("status is required")
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	if appeal.Status == status {
		return appeal, nil
	}

	known, err := StatusExists(db, status)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.Validation("unknown status %q", status)
	}

	oldStatus := appeal.Status
	updates := map[string]interface{}{"status": status}

	// On Hold is the only status with derived date side effects. Re-entering
	// it overwrites the previous hold dates; hold history lives in the audit
	// trail.
	today := time.Now()
	if status == models.StatusOnHold {
		updates["on_hold_start"] = today
	} else if oldStatus == models.StatusOnHold {
		updates["on_hold_end"] = today
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appeal).Updates(updates).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Appeal", appeal.ID, map[string]interface{}{
			"old_status": oldStatus,
			"new_status": status,
		})
	})
	if err != nil {
		return nil, err
	}

	return getAppealForUpdate(db, appealID)
}

// SetStage validates and applies a stage change. Same shape as SetStatus
// but with no derived date side effects.
func SetStage(db *gorm.DB, actx AuditContext, appealID, stage string) (*models.Appeal, error) {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return nil, apperr.Validation("stage is required")
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	if appeal.Stage == stage {
		return appeal, nil
	}

	known, err := StageExists(db, stage)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.Validation("unknown stage %q", stage)
	}

	oldStage := appeal.Stage
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appeal).Update("stage", stage).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Appeal", appeal.ID, map[string]interface{}{
			"old_stage": oldStage,
			"new_stage": stage,
		})
	})
	if err != nil {
		return nil, err
	}

	return getAppealForUpdate(db, appealID)
}

// AppealFilters narrows ListAppeals results. Zero values mean "no filter".
type AppealFilters struct {
	Status       string
	Stage        string
	IssueType    string
	PrimaryStaff string
	Search       string
	Page         int
	Limit        int
}

// ListAppeals returns a page of appeals plus the unfiltered-by-page total.
// Search matches file number and description.
func ListAppeals(db *gorm.DB, f AppealFilters) ([]models.Appeal, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 25
	}

	q := db.Model(&models.Appeal{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Stage != "" {
		q = q.Where("stage = ?", f.Stage)
	}
	if f.IssueType != "" {
		q = q.Where("issue_type = ?", f.IssueType)
	}
	if f.PrimaryStaff != "" {
		q = q.Where("primary_staff = ?", f.PrimaryStaff)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("file_number LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appeals []models.Appeal
	err := q.
		Preload("Parties.Client").
		Preload("Parties.Organization").
		Order("file_number DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&appeals).Error
	if err != nil {
		return nil, 0, err
	}
	return appeals, total, nil
}

// UpdateAppealInput carries the editable descriptive fields. Nil pointers
// mean "leave unchanged". Status and stage have their own operations and
// are deliberately absent here.
type UpdateAppealInput struct {
	IssueType        *string
	Description      *string
	LegalDescription *string
	Background       *string
	Notes            *string
	PrimaryStaff     *string
	SecondaryStaff   *string
	ContactDate      *time.Time
	ClosedDate       *time.Time
}

// UpdateAppeal applies a partial update to an appeal's descriptive fields
// and records the changed field names in the audit trail.
func UpdateAppeal(db *gorm.DB, actx AuditContext, appealID string, in UpdateAppealInput) (*models.Appeal, error) {
	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.IssueType != nil {
		v := SanitizePlain(*in.IssueType)
		known, err := IssueTypeExists(db, v)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, apperr.Validation("unknown issue type %q", v)
		}
		updates["issue_type"] = v
	}
	if in.Description != nil {
		v := SanitizeRichText(*in.Description)
		if v == "" {
			return nil, apperr.Validation("description cannot be empty")
		}
		updates["description"] = v
	}
	if in.LegalDescription != nil {
		updates["legal_description"] = SanitizePlain(*in.LegalDescription)
	}
	if in.Background != nil {
		updates["background"] = SanitizeRichText(*in.Background)
	}
	if in.Notes != nil {
		updates["notes"] = SanitizeRichText(*in.Notes)
	}
	if in.PrimaryStaff != nil {
		v := SanitizePlain(*in.PrimaryStaff)
		if v == "" {
			return nil, apperr.Validation("primary staff cannot be empty")
		}
		updates["primary_staff"] = v
	}
	if in.SecondaryStaff != nil {
		updates["secondary_staff"] = SanitizePlain(*in.SecondaryStaff)
	}
	if in.ContactDate != nil {
		updates["contact_date"] = *in.ContactDate
	}
	if in.ClosedDate != nil {
		updates["closed_date"] = *in.ClosedDate
	}

	if len(updates) == 0 {
		return appeal, nil
	}

	changed := make([]string, 0, len(updates))
	for k := range updates {
		changed = append(changed, k)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(appeal).Updates(updates).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Appeal", appeal.ID, map[string]interface{}{
			"fields": changed,
		})
	})
	if err != nil {
		return nil, err
	}

	return getAppealForUpdate(db, appealID)
}

// isUniqueViolation reports whether err is a storage-layer uniqueness error.
// sqlite reports these as "UNIQUE constraint failed: table.column".
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
