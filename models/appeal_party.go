package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Common party roles. The column is free text; these cover the roles staff
// actually assign.
const (
	PartyTypeApplicant      = "Applicant"
	PartyTypeRespondent     = "Respondent"
	PartyTypeRepresentative = "Representative"
	PartyTypeIntervenor     = "Intervenor"
)

// AppealParty links a client or an organization to an appeal with a role.
// Exactly one of ClientID/OrganizationID is set; the composite unique
// indexes make a repeated link a storage-level conflict.
type AppealParty struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AppealID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_party_client;uniqueIndex:idx_party_org" json:"appeal_id"`
	Appeal   Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`

	ClientID       *string `gorm:"type:uuid;uniqueIndex:idx_party_client" json:"client_id,omitempty"`
	OrganizationID *string `gorm:"type:uuid;uniqueIndex:idx_party_org" json:"organization_id,omitempty"`

	PartyType string  `gorm:"size:50;not null;uniqueIndex:idx_party_client;uniqueIndex:idx_party_org" json:"party_type"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	Client       *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

// BeforeCreate hook to generate UUID
func (p *AppealParty) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for AppealParty model
func (AppealParty) TableName() string {
	return "appeal_parties"
}

// DisplayName returns the linked client or organization name
func (p *AppealParty) DisplayName() string {
	if p.Client != nil {
		return p.Client.FullName()
	}
	if p.Organization != nil {
		return p.Organization.Name
	}
	return ""
}
