package services

import (
	"errors"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// AddPartyInput links a client or an organization to an appeal in a role.
// Exactly one of ClientID and OrganizationID must be set.
type AddPartyInput struct {
	ClientID       *string
	OrganizationID *string
	PartyType      string
	Notes          *string
}

var validPartyTypes = map[string]bool{
	models.PartyTypeApplicant:      true,
	models.PartyTypeRespondent:     true,
	models.PartyTypeRepresentative: true,
	models.PartyTypeIntervenor:     true,
}

// AddParty attaches a party to an appeal. The same client or organization
// cannot hold the same role twice on one appeal; it can appear again in a
// different role.
func AddParty(db *gorm.DB, actx AuditContext, appealID string, in AddPartyInput) (*models.AppealParty, error) {
	hasClient := in.ClientID != nil && *in.ClientID != ""
	hasOrg := in.OrganizationID != nil && *in.OrganizationID != ""
	if hasClient == hasOrg {
		return nil, apperr.Validation("exactly one of client or organization is required")
	}
	if !validPartyTypes[in.PartyType] {
		return nil, apperr.Validation("unknown party type %q", in.PartyType)
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	party := models.AppealParty{
		AppealID:  appeal.ID,
		PartyType: in.PartyType,
		Notes:     in.Notes,
	}

	if hasClient {
		var client models.Client
		if err := db.First(&client, "id = ?", *in.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("client not found")
			}
			return nil, err
		}
		var count int64
		err := db.Model(&models.AppealParty{}).
			Where("appeal_id = ? AND client_id = ? AND party_type = ?", appeal.ID, *in.ClientID, in.PartyType).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.Conflict("%s is already a %s on this appeal", client.FullName(), in.PartyType)
		}
		party.ClientID = in.ClientID
	} else {
		var org models.Organization
		if err := db.First(&org, "id = ?", *in.OrganizationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("organization not found")
			}
			return nil, err
		}
		var count int64
		err := db.Model(&models.AppealParty{}).
			Where("appeal_id = ? AND organization_id = ? AND party_type = ?", appeal.ID, *in.OrganizationID, in.PartyType).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.Conflict("%s is already a %s on this appeal", org.Name, in.PartyType)
		}
		party.OrganizationID = in.OrganizationID
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&party).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "party already holds this role on the appeal")
			}
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "AppealParty", party.ID, map[string]interface{}{
			"appeal_id":  appeal.ID,
			"party_type": party.PartyType,
		})
	})
	if err != nil {
		return nil, err
	}

	err = db.Preload("Client").Preload("Organization").First(&party, "id = ?", party.ID).Error
	if err != nil {
		return nil, err
	}
	return &party, nil
}

// RemoveParty detaches a party from its appeal.
func RemoveParty(db *gorm.DB, actx AuditContext, appealID, partyID string) error {
	var party models.AppealParty
	err := db.First(&party, "id = ? AND appeal_id = ?", partyID, appealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("party not found on this appeal")
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&party).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionDelete, "AppealParty", party.ID, map[string]interface{}{
			"appeal_id":  appealID,
			"party_type": party.PartyType,
		})
	})
}

// ListParties returns all parties on an appeal with their contacts loaded.
func ListParties(db *gorm.DB, appealID string) ([]models.AppealParty, error) {
	if _, err := getAppealForUpdate(db, appealID); err != nil {
		return nil, err
	}
	var parties []models.AppealParty
	err := db.
		Preload("Client").
		Preload("Organization").
		Where("appeal_id = ?", appealID).
		Order("created_at ASC").
		Find(&parties).Error
	return parties, err
}
