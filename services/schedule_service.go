package services

import (
	"errors"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// ScheduleInput carries a new mediation or hearing booking.
type ScheduleInput struct {
	Date     time.Time
	Time     *string
	Location *string
	IsPublic bool
	Notes    *string
}

// ScheduleMediation books a mediation session for an appeal. When the
// appeal sits at stage 1 the booking advances it to stage 2a; at any other
// stage the booking records without moving the appeal.
func ScheduleMediation(db *gorm.DB, actx AuditContext, appealID string, in ScheduleInput) (*models.ScheduleEntry, error) {
	return scheduleEntry(db, actx, appealID, models.EntryTypeMediation, EventMediationScheduled, in)
}

// ScheduleHearing books an oral hearing. A panel must already be assigned
// to the appeal. Booking from stages 1 through 3 advances the appeal to
// stage 4; an appeal already at stage 5 stays put.
func ScheduleHearing(db *gorm.DB, actx AuditContext, appealID string, in ScheduleInput) (*models.ScheduleEntry, error) {
	if _, err := CurrentPanel(db, appealID); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Kind == apperr.KindNotFound {
			return nil, apperr.Validation("a panel must be assigned before a hearing can be scheduled")
		}
		return nil, err
	}
	return scheduleEntry(db, actx, appealID, models.EntryTypeOral, EventHearingScheduled, in)
}

func scheduleEntry(db *gorm.DB, actx AuditContext, appealID, entryType string, event LifecycleEvent, in ScheduleInput) (*models.ScheduleEntry, error) {
	if in.Date.IsZero() {
		return nil, apperr.Validation("date is required")
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	entry := models.ScheduleEntry{
		AppealID:  appeal.ID,
		EntryType: entryType,
		Date:      in.Date,
		Time:      in.Time,
		Location:  in.Location,
		IsPublic:  in.IsPublic,
		Notes:     in.Notes,
	}

	oldStage := appeal.Stage
	finalStage := appeal.Stage
	newStage, moved := NextStage(event, appeal.Stage)
	if moved {
		finalStage = newStage
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		switch entryType {
		case models.EntryTypeMediation:
			updates["mediation_date"] = in.Date
		case models.EntryTypeOral:
			updates["hearing_date"] = in.Date
		}
		if moved {
			updates["stage"] = newStage
		}
		if err := tx.Model(appeal).Updates(updates).Error; err != nil {
			return err
		}

		return WriteAuditEntry(tx, actx, models.AuditActionSchedule, "Appeal", appeal.ID, map[string]interface{}{
			"entry_type":       entryType,
			"date":             in.Date.Format("2006-01-02"),
			"stage_transition": TransitionString(oldStage, finalStage),
		})
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// RecordScheduleOutcome stores the outcome text of a past mediation or
// hearing, such as "Conciliated" or "Adjourned".
func RecordScheduleOutcome(db *gorm.DB, actx AuditContext, appealID, entryID, outcome string) (*models.ScheduleEntry, error) {
	outcome = SanitizePlain(outcome)
	if outcome == "" {
		return nil, apperr.Validation("outcome is required")
	}

	var entry models.ScheduleEntry
	err := db.First(&entry, "id = ? AND appeal_id = ?", entryID, appealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("schedule entry not found on this appeal")
		}
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entry).Update("outcome", outcome).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "ScheduleEntry", entry.ID, map[string]interface{}{
			"appeal_id": appealID,
			"outcome":   outcome,
		})
	})
	if err != nil {
		return nil, err
	}

	entry.Outcome = &outcome
	return &entry, nil
}

// ListSchedule returns all schedule entries for an appeal, soonest first.
func ListSchedule(db *gorm.DB, appealID string) ([]models.ScheduleEntry, error) {
	if _, err := getAppealForUpdate(db, appealID); err != nil {
		return nil, err
	}
	var entries []models.ScheduleEntry
	err := db.
		Where("appeal_id = ?", appealID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

// UpcomingPublicSchedule returns public entries from today onward across
// all appeals, for the public-facing calendar.
func UpcomingPublicSchedule(db *gorm.DB, limit int) ([]models.ScheduleEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 25
	}
	var entries []models.ScheduleEntry
	today := time.Now().Truncate(24 * time.Hour)
	err := db.
		Preload("Appeal").
		Where("is_public = ? AND date >= ?", true, today).
		Order("date ASC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
