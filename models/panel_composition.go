package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PanelComposition records the named individuals assigned to adjudicate an
// appeal. Chair and second member are mandatory; third member and mediator
// are optional.
type PanelComposition struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AppealID string `gorm:"type:uuid;not null;index" json:"appeal_id"`
	Appeal   Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`

	PanelChair   string  `gorm:"size:100;not null" json:"panel_chair"`
	PanelMember2 string  `gorm:"column:panel_member_2;size:100;not null" json:"panel_member_2"`
	PanelMember3 *string `gorm:"column:panel_member_3;size:100" json:"panel_member_3,omitempty"`
	Mediator     *string `gorm:"size:100" json:"mediator,omitempty"`

	DateAssigned *time.Time `json:"date_assigned,omitempty"`
}

// BeforeCreate hook to generate UUID
func (pc *PanelComposition) BeforeCreate(tx *gorm.DB) error {
	if pc.ID == "" {
		pc.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for PanelComposition model
func (PanelComposition) TableName() string {
	return "panel_compositions"
}

// Names returns all provided member names across the four roles
func (pc *PanelComposition) Names() []string {
	names := []string{pc.PanelChair, pc.PanelMember2}
	if pc.PanelMember3 != nil && *pc.PanelMember3 != "" {
		names = append(names, *pc.PanelMember3)
	}
	if pc.Mediator != nil && *pc.Mediator != "" {
		names = append(names, *pc.Mediator)
	}
	return names
}
