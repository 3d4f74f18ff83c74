package services

import (
	"errors"
	"fmt"
	"log"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusExists reports whether code is a known appeal status.
func StatusExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&models.AppealStatus{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// StageExists reports whether code is a known appeal stage.
func StageExists(db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.Model(&models.AppealStage{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// IssueTypeExists reports whether name is a known issue type.
func IssueTypeExists(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&models.IssueType{}).Where("name = ? OR code = ?", name, name).Count(&count).Error
	return count > 0, err
}

// GetSettlement fetches a settlement by ID
func GetSettlement(db *gorm.DB, id string) (*models.Settlement, error) {
	var settlement models.Settlement
	if err := db.First(&settlement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("settlement not found")
		}
		return nil, err
	}
	return &settlement, nil
}

// GetSettlementBySortOrder fetches a settlement by its file-number prefix value
func GetSettlementBySortOrder(db *gorm.DB, sortOrder int) (*models.Settlement, error) {
	var settlement models.Settlement
	if err := db.First(&settlement, "sort_order = ?", sortOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no settlement with sort order %d", sortOrder)
		}
		return nil, err
	}
	return &settlement, nil
}

// ListSettlements returns all settlements in sort order
func ListSettlements(db *gorm.DB) ([]models.Settlement, error) {
	var settlements []models.Settlement
	err := db.Order("sort_order").Find(&settlements).Error
	return settlements, err
}

// ListIssueTypes returns all issue types in sort order
func ListIssueTypes(db *gorm.DB) ([]models.IssueType, error) {
	var issueTypes []models.IssueType
	err := db.Order("sort_order").Find(&issueTypes).Error
	return issueTypes, err
}

// ListStatuses returns the status vocabulary in sort order
func ListStatuses(db *gorm.DB) ([]models.AppealStatus, error) {
	var statuses []models.AppealStatus
	err := db.Order("sort_order, name").Find(&statuses).Error
	return statuses, err
}

// ListStages returns the stage vocabulary in sort order
func ListStages(db *gorm.DB) ([]models.AppealStage, error) {
	var stages []models.AppealStage
	err := db.Order("sort_order, name").Find(&stages).Error
	return stages, err
}

// GetBoardMemberNames returns known panel-member names: active board-member
// users plus distinct names already present in panel compositions (legacy
// data predates user accounts).
func GetBoardMemberNames(db *gorm.DB) ([]string, error) {
	var users []models.User
	if err := db.Where("is_active = ? AND role = ?", true, models.RoleBoardMember).
		Order("last_name, first_name").
		Find(&users).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, u := range users {
		name := u.FullName()
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	var legacy []string
	err := db.Raw(`
		SELECT DISTINCT name FROM (
			SELECT panel_chair AS name FROM panel_compositions WHERE panel_chair IS NOT NULL
			UNION SELECT panel_member_2 FROM panel_compositions WHERE panel_member_2 IS NOT NULL
			UNION SELECT panel_member_3 FROM panel_compositions WHERE panel_member_3 IS NOT NULL
			UNION SELECT mediator FROM panel_compositions WHERE mediator IS NOT NULL
		) ORDER BY name
	`).Scan(&legacy).Error
	if err != nil {
		return nil, err
	}
	for _, name := range legacy {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// GetStaffNames returns names assignable as primary or secondary staff:
// active staff and admin users plus distinct staff names already on appeals.
func GetStaffNames(db *gorm.DB) ([]string, error) {
	var users []models.User
	if err := db.Where("is_active = ? AND role IN ?", true,
		[]string{models.RoleStaff, models.RoleAdmin, models.RoleSuperadmin}).
		Order("last_name, first_name").
		Find(&users).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, u := range users {
		name := u.FullName()
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	var legacy []string
	err := db.Raw(`
		SELECT DISTINCT name FROM (
			SELECT primary_staff AS name FROM appeals WHERE primary_staff <> ''
			UNION SELECT secondary_staff FROM appeals WHERE secondary_staff IS NOT NULL AND secondary_staff <> ''
		) ORDER BY name
	`).Scan(&legacy).Error
	if err != nil {
		return nil, err
	}
	for _, name := range legacy {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// SeedLookups inserts the lookup vocabularies if missing. Existing rows are
// left untouched so locally added statuses and stages survive restarts.
func SeedLookups(db *gorm.DB) error {
	settlements := []models.Settlement{
		{Code: "BL", Name: "Buffalo Lake", SortOrder: 1},
		{Code: "EP", Name: "East Prairie", SortOrder: 2},
		{Code: "EL", Name: "Elizabeth", SortOrder: 3},
		{Code: "FL", Name: "Fishing Lake", SortOrder: 4},
		{Code: "GL", Name: "Gift Lake", SortOrder: 5},
		{Code: "KK", Name: "Kikino", SortOrder: 6},
		{Code: "PP", Name: "Paddle Prairie", SortOrder: 7},
		{Code: "PV", Name: "Peavine", SortOrder: 8},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&settlements).Error; err != nil {
		return fmt.Errorf("failed to seed settlements: %w", err)
	}

	issueTypes := []models.IssueType{
		{Code: "LAND", Name: "Land", SortOrder: 1},
		{Code: "MEMBERSHIP", Name: "Membership", SortOrder: 2},
		{Code: "COMPENSATION", Name: "Compensation", SortOrder: 3},
		{Code: "DESCENT", Name: "Descent of Property", SortOrder: 4},
		{Code: "PMT", Name: "PMT Cancellation", SortOrder: 5},
		{Code: "TRESPASS", Name: "Trespass", SortOrder: 6},
		{Code: "OTHER", Name: "Other", SortOrder: 7},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&issueTypes).Error; err != nil {
		return fmt.Errorf("failed to seed issue types: %w", err)
	}

	statuses := []models.AppealStatus{
		{Code: models.StatusNew, Name: "New", SortOrder: 1},
		{Code: models.StatusActive, Name: "Active", SortOrder: 2},
		{Code: models.StatusConciliation, Name: "Conciliation", SortOrder: 3},
		{Code: models.StatusConciliated, Name: "Conciliated", SortOrder: 4},
		{Code: models.StatusMediation, Name: "Mediation", SortOrder: 5},
		{Code: models.StatusMediated, Name: "Mediated", SortOrder: 6},
		{Code: models.StatusOnHold, Name: "On Hold", SortOrder: 7},
		{Code: models.StatusOrderIssued, Name: "Order Issued", SortOrder: 8},
		{Code: models.StatusDecisionLetter, Name: "Decision Letter Issued", SortOrder: 9},
		{Code: models.StatusNoMerit, Name: "No Merit", SortOrder: 10},
		{Code: models.StatusNoJurisdiction, Name: "No Jurisdiction", SortOrder: 11},
		{Code: models.StatusWithdrawn, Name: "Withdrawn", SortOrder: 12},
		{Code: models.StatusClosed, Name: "Closed", SortOrder: 13},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error; err != nil {
		return fmt.Errorf("failed to seed appeal statuses: %w", err)
	}

	stages := []models.AppealStage{
		{Code: models.Stage1, Name: "Receipt of Appeal", SortOrder: 1},
		{Code: models.Stage2a, Name: "Mediation", SortOrder: 2},
		{Code: models.Stage2b, Name: "Preliminary Information Gathering", SortOrder: 3},
		{Code: models.Stage2c, Name: "Paper Review", SortOrder: 4},
		{Code: models.Stage3, Name: "Information Gathering & Draft Hearing Package", SortOrder: 5},
		{Code: models.Stage4, Name: "Draft Hearing Package & Hearing Scheduling", SortOrder: 6},
		{Code: models.Stage5, Name: "Hearing & Decision", SortOrder: 7},
		// Legacy free-text stage names preserved from the old records
		{Code: "Information Gathering", Name: "Information Gathering", SortOrder: 8},
		{Code: "Conciliation Phase", Name: "Conciliation Phase", SortOrder: 9},
		{Code: "Mediation", Name: "Mediation", SortOrder: 10},
		{Code: "Hearing Scheduled", Name: "Hearing Scheduled", SortOrder: 11},
		{Code: "Decision Pending", Name: "Decision Pending", SortOrder: 12},
		{Code: "Paper Review", Name: "Paper Review", SortOrder: 13},
		{Code: "DHP Prep", Name: "Draft Hearing Package Preparation", SortOrder: 14},
		{Code: "DHP Sent", Name: "Draft Hearing Package Sent", SortOrder: 15},
		{Code: "Preliminary Issue Jurisdiction", Name: "Preliminary Issue - Jurisdiction", SortOrder: 16},
		{Code: "On Hold", Name: "On Hold", SortOrder: 17},
		{Code: "Order Issued", Name: "Order Issued", SortOrder: 18},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&stages).Error; err != nil {
		return fmt.Errorf("failed to seed appeal stages: %w", err)
	}

	log.Println("[SEED] Lookup tables seeded")
	return nil
}
