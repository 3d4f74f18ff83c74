package services

import (
	"errors"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// OrganizationInput carries the editable fields of an organization.
type OrganizationInput struct {
	Name       string
	Contact    *string
	Address1   *string
	Address2   *string
	City       *string
	Province   *string
	PostalCode *string
	Phone      *string
	Fax        *string
	Email      *string
	Notes      *string
}

// CreateOrganization registers a body in the contact registry.
func CreateOrganization(db *gorm.DB, actx AuditContext, in OrganizationInput) (*models.Organization, error) {
	in.Name = SanitizePlain(in.Name)
	if in.Name == "" {
		return nil, apperr.Validation("organization name is required")
	}

	org := models.Organization{
		Name:       in.Name,
		Contact:    in.Contact,
		Address1:   in.Address1,
		Address2:   in.Address2,
		City:       in.City,
		Province:   in.Province,
		PostalCode: in.PostalCode,
		Phone:      in.Phone,
		Fax:        in.Fax,
		Email:      in.Email,
		Notes:      in.Notes,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "Organization", org.ID, map[string]interface{}{
			"name": org.Name,
		})
	})
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetOrganization fetches an organization by ID.
func GetOrganization(db *gorm.DB, id string) (*models.Organization, error) {
	var org models.Organization
	if err := db.First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// UpdateOrganization replaces an organization's fields.
func UpdateOrganization(db *gorm.DB, actx AuditContext, id string, in OrganizationInput) (*models.Organization, error) {
	org, err := GetOrganization(db, id)
	if err != nil {
		return nil, err
	}

	in.Name = SanitizePlain(in.Name)
	if in.Name == "" {
		return nil, apperr.Validation("organization name is required")
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"contact":     in.Contact,
		"address1":    in.Address1,
		"address2":    in.Address2,
		"city":        in.City,
		"province":    in.Province,
		"postal_code": in.PostalCode,
		"phone":       in.Phone,
		"fax":         in.Fax,
		"email":       in.Email,
		"notes":       in.Notes,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(org).Updates(updates).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpdate, "Organization", org.ID, map[string]interface{}{
			"name": in.Name,
		})
	})
	if err != nil {
		return nil, err
	}
	return GetOrganization(db, id)
}

// SearchOrganizations returns a page of organizations matching the query.
func SearchOrganizations(db *gorm.DB, search string, page, limit int) ([]models.Organization, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	q := db.Model(&models.Organization{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR contact LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orgs []models.Organization
	err := q.
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orgs).Error
	if err != nil {
		return nil, 0, err
	}
	return orgs, total, nil
}

// DeleteOrganization soft-deletes an organization not linked to any appeal.
func DeleteOrganization(db *gorm.DB, actx AuditContext, id string) error {
	org, err := GetOrganization(db, id)
	if err != nil {
		return err
	}

	var linked int64
	if err := db.Model(&models.AppealParty{}).Where("organization_id = ?", id).Count(&linked).Error; err != nil {
		return err
	}
	if linked > 0 {
		return apperr.Conflict("organization is a party on %d appeal(s) and cannot be deleted", linked)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(org).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionDelete, "Organization", org.ID, map[string]interface{}{
			"name": org.Name,
		})
	})
}
