package services

import (
	"errors"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// RecordOrderInput carries a new tribunal order for an appeal.
type RecordOrderInput struct {
	IssueDate    time.Time
	HearingDate  *time.Time
	Keyword      *string
	AppForLeave  bool
	LeaveGranted bool
	DocumentURL  *string
	IsPublic     bool
	Subjects     models.OrderSubjects
}

// RecordOrder issues a tribunal order against an appeal. The order number
// comes from the single tribunal-wide counter, so numbers are unique and
// increasing across all appeals. Recording an order always moves the appeal
// to status "Order Issued" regardless of its current status. Allocation,
// insert, status change, and audit entry share one transaction.
func RecordOrder(db *gorm.DB, actx AuditContext, appealID string, in RecordOrderInput) (*models.Order, error) {
	if in.IssueDate.IsZero() {
		return nil, apperr.Validation("issue date is required")
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	oldStatus := appeal.Status
	newStatus, forced := NextStatus(EventOrderRecorded, appeal.Status)
	if !forced {
		newStatus = appeal.Status
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		number, err := NextOrderNumber(tx)
		if err != nil {
			return err
		}

		order = models.Order{
			AppealID:     appeal.ID,
			OrderNumber:  number,
			IssueDate:    in.IssueDate,
			HearingDate:  in.HearingDate,
			Keyword:      in.Keyword,
			AppForLeave:  in.AppForLeave,
			LeaveGranted: in.LeaveGranted,
			DocumentURL:  in.DocumentURL,
			IsPublic:     in.IsPublic,
		}
		if err := tx.Create(&order).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "order number %d already exists", number)
			}
			return err
		}

		in.Subjects.OrderID = order.ID
		if err := tx.Create(&in.Subjects).Error; err != nil {
			return err
		}
		order.Subjects = &in.Subjects

		if newStatus != oldStatus {
			if err := tx.Model(appeal).Update("status", newStatus).Error; err != nil {
				return err
			}
		}

		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "Order", order.ID, map[string]interface{}{
			"appeal_id":         appeal.ID,
			"order_number":      order.OrderNumber,
			"status_transition": TransitionString(oldStatus, newStatus),
		})
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// GetOrder fetches an order by ID with its subject flags.
func GetOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Subjects").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders returns all orders on an appeal, newest number first.
func ListOrders(db *gorm.DB, appealID string) ([]models.Order, error) {
	if _, err := getAppealForUpdate(db, appealID); err != nil {
		return nil, err
	}
	var orders []models.Order
	err := db.
		Preload("Subjects").
		Where("appeal_id = ?", appealID).
		Order("order_number DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderInput carries editable order metadata. Nil means unchanged.
type UpdateOrderInput struct {
	Keyword      *string
	AppForLeave  *bool
	LeaveGranted *bool
	DocumentURL  *string
	IsPublic     *bool
}

// UpdateOrder amends an order's metadata. The order number and issue date
// are immutable once recorded.
func UpdateOrder(db *gorm.DB, actx AuditContext, orderID string, in UpdateOrderInput) (*models.Order, error) {
	order, err := GetOrder(db, orderID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Keyword != nil {
		updates["keyword"] = SanitizePlain(*in.Keyword)
	}
	if in.AppForLeave != nil {
		updates["app_for_leave"] = *in.AppForLeave
	}
	if in.LeaveGranted != nil {
		updates["leave_granted"] = *in.LeaveGranted
	}
	if in.DocumentURL != nil {
		updates["document_url"] = *in.DocumentURL
	}
	if in.IsPublic != nil {
		updates["is_public"] = *in.IsPublic
	}
	if len(updates) == 0 {
		return order, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Updates(updates).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Order", order.ID, map[string]interface{}{
			"order_number": order.OrderNumber,
		})
	})
	if err != nil {
		return nil, err
	}

	return GetOrder(db, orderID)
}

// DecisionFilters narrows the public decision search.
type DecisionFilters struct {
	Keyword    string
	Subject    string
	Settlement string
	IssueType  string
	Year       int
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	Limit      int
}

// subjectColumns maps search subject names to order_subjects columns.
var subjectColumns = map[string]string{
	"land":                "land",
	"membership":          "membership",
	"compensation":        "compensation",
	"descent_of_property": "descent_of_property",
	"pmt_cancellations":   "pmt_cancellations",
	"trespass":            "trespass",
}

// SearchPublicDecisions returns published orders for the public decision
// registry, filtered by keyword, subject flag, settlement, issue type, year,
// and issue date range. The settlement is resolved from the file-number
// prefix, which encodes the settlement sort order.
func SearchPublicDecisions(db *gorm.DB, f DecisionFilters) ([]models.Order, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 25
	}

	q := db.Model(&models.Order{}).Where("orders.is_public = ?", true)
	if f.Keyword != "" {
		q = q.Where("orders.keyword LIKE ?", "%"+f.Keyword+"%")
	}
	if f.Subject != "" {
		col, ok := subjectColumns[f.Subject]
		if !ok {
			return nil, 0, apperr.Validation("unknown subject %q", f.Subject)
		}
		q = q.Joins("JOIN order_subjects ON order_subjects.order_id = orders.id").
			Where("order_subjects."+col+" = ?", true)
	}
	if f.Settlement != "" || f.IssueType != "" {
		q = q.Joins("JOIN appeals ON appeals.id = orders.appeal_id")
	}
	if f.Settlement != "" {
		var settlement models.Settlement
		err := db.First(&settlement, "name = ? OR code = ?", f.Settlement, f.Settlement).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperr.Validation("unknown settlement %q", f.Settlement)
			}
			return nil, 0, err
		}
		q = q.Where("CAST(substr(appeals.file_number, 1, 2) AS INTEGER) = ?", settlement.SortOrder)
	}
	if f.IssueType != "" {
		q = q.Where("appeals.issue_type = ?", f.IssueType)
	}
	if f.Year > 0 {
		yearStart := time.Date(f.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("orders.issue_date >= ? AND orders.issue_date < ?",
			yearStart, yearStart.AddDate(1, 0, 0))
	}
	if f.FromDate != nil {
		q = q.Where("orders.issue_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("orders.issue_date <= ?", *f.ToDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := q.
		Preload("Subjects").
		Order("orders.order_number DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
