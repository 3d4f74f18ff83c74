package services

import (
	"errors"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// ClientInput carries the editable contact fields of a client.
type ClientInput struct {
	MemberID    *string
	Title       *string
	FirstName   string
	MiddleName  *string
	LastName    string
	Address1    *string
	Address2    *string
	City        *string
	Province    *string
	PostalCode  *string
	DateOfBirth *time.Time
	PhoneHome   *string
	PhoneWork   *string
	PhoneCell   *string
	Email       *string
	Settlement  *string
	OrgName     *string
	JobTitle    *string
	Department  *string
	Notes       *string
}

func (in *ClientInput) sanitize() error {
	in.FirstName = SanitizePlain(in.FirstName)
	in.LastName = SanitizePlain(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return apperr.Validation("first and last name are required")
	}
	return nil
}

// CreateClient registers a person record in the contact registry.
func CreateClient(db *gorm.DB, actx AuditContext, in ClientInput) (*models.Client, error) {
	if err := in.sanitize(); err != nil {
		return nil, err
	}

	client := models.Client{
		MemberID:    in.MemberID,
		Title:       in.Title,
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		LastName:    in.LastName,
		Address1:    in.Address1,
		Address2:    in.Address2,
		City:        in.City,
		Province:    in.Province,
		PostalCode:  in.PostalCode,
		DateOfBirth: in.DateOfBirth,
		PhoneHome:   in.PhoneHome,
		PhoneWork:   in.PhoneWork,
		PhoneCell:   in.PhoneCell,
		Email:       in.Email,
		Settlement:  in.Settlement,
		OrgName:     in.OrgName,
		JobTitle:    in.JobTitle,
		Department:  in.Department,
		Notes:       in.Notes,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&client).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "a client with this email already exists")
			}
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "Client", client.ID, map[string]interface{}{
			"name": client.FullName(),
		})
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetClient fetches a client by ID.
func GetClient(db *gorm.DB, id string) (*models.Client, error) {
	var client models.Client
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client not found")
		}
		return nil, err
	}
	return &client, nil
}

// UpdateClient replaces a client's contact fields.
func UpdateClient(db *gorm.DB, actx AuditContext, id string, in ClientInput) (*models.Client, error) {
	client, err := GetClient(db, id)
	if err != nil {
		return nil, err
	}
	if err := in.sanitize(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"member_id":     in.MemberID,
		"title":         in.Title,
		"first_name":    in.FirstName,
		"middle_name":   in.MiddleName,
		"last_name":     in.LastName,
		"address1":      in.Address1,
		"address2":      in.Address2,
		"city":          in.City,
		"province":      in.Province,
		"postal_code":   in.PostalCode,
		"date_of_birth": in.DateOfBirth,
		"phone_home":    in.PhoneHome,
		"phone_work":    in.PhoneWork,
		"phone_cell":    in.PhoneCell,
		"email":         in.Email,
		"settlement":    in.Settlement,
		"org_name":      in.OrgName,
		"job_title":     in.JobTitle,
		"department":    in.Department,
		"notes":         in.Notes,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(client).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "a client with this email already exists")
			}
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Client", client.ID, map[string]interface{}{
			"name": in.FirstName + " " + in.LastName,
		})
	})
	if err != nil {
		return nil, err
	}
	return GetClient(db, id)
}

// SearchClients returns a page of clients matching the name or email query.
func SearchClients(db *gorm.DB, search string, page, limit int) ([]models.Client, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	q := db.Model(&models.Client{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR member_id LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	err := q.
		Order("last_name ASC, first_name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// DeleteClient soft-deletes a client not linked to any appeal.
func DeleteClient(db *gorm.DB, actx AuditContext, id string) error {
	client, err := GetClient(db, id)
	if err != nil {
		return err
	}

	var linked int64
	if err := db.Model(&models.AppealParty{}).Where("client_id = ?", id).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return apperr.Conflict("client is a party on %d appeal(s) and cannot be deleted", linked)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(client).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionDelete, "Client", client.ID, map[string]interface{}{
			"name": client.FullName(),
		})
	})
}
