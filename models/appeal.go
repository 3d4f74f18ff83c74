package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appeal status codes. The authoritative vocabulary lives in the
// appeal_statuses lookup table; these constants cover the values the
// lifecycle rules key on.
const (
	StatusNew            = "New"
	StatusActive         = "Active"
	StatusConciliation   = "Conciliation"
	StatusConciliated    = "Conciliated"
	StatusMediation      = "Mediation"
	StatusMediated       = "Mediated"
	StatusOnHold         = "On Hold"
	StatusOrderIssued    = "Order Issued"
	StatusDecisionLetter = "Decision Letter Issued"
	StatusNoMerit        = "No Merit"
	StatusNoJurisdiction = "No Jurisdiction"
	StatusWithdrawn      = "Withdrawn"
	StatusClosed         = "Closed"
)

// Appeal stage codes from the operations manual. Legacy data also carries
// free-text stage names; those live only in the appeal_stages lookup table.
const (
	Stage1  = "1"
	Stage2a = "2a"
	Stage2b = "2b"
	Stage2c = "2c"
	Stage3  = "3"
	Stage4  = "4"
	Stage5  = "5"
)

// Appeal is the central case record. It is created once, mutated in place by
// staff actions, and never hard-deleted.
type Appeal struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Identification
	FileNumber string `gorm:"size:30;not null;uniqueIndex" json:"file_number"`

	// Classification
	IssueType        string  `gorm:"size:100;not null;index" json:"issue_type"`
	Description      string  `gorm:"type:text;not null" json:"description"`
	LegalDescription *string `gorm:"type:text" json:"legal_description,omitempty"`
	Background       *string `gorm:"type:text" json:"background,omitempty"`
	Notes            *string `gorm:"type:text" json:"notes,omitempty"`

	// Lifecycle
	Status      string     `gorm:"size:50;not null;default:Active;index" json:"status"`
	Stage       string     `gorm:"size:50;not null;default:1;index" json:"stage"`
	ContactDate *time.Time `gorm:"index" json:"contact_date,omitempty"`
	ClosedDate  *time.Time `json:"closed_date,omitempty"`
	OnHoldStart *time.Time `json:"on_hold_start,omitempty"`
	OnHoldEnd   *time.Time `json:"on_hold_end,omitempty"`

	// Scheduling snapshots (latest scheduled dates)
	MediationDate *time.Time `json:"mediation_date,omitempty"`
	HearingDate   *time.Time `json:"hearing_date,omitempty"`

	// Assignment
	PrimaryStaff   string  `gorm:"size:100;not null;index" json:"primary_staff"`
	SecondaryStaff *string `gorm:"size:100" json:"secondary_staff,omitempty"`

	// Relationships
	Parties   []AppealParty      `gorm:"foreignKey:AppealID" json:"parties,omitempty"`
	Panels    []PanelComposition `gorm:"foreignKey:AppealID" json:"panels,omitempty"`
	Schedule  []ScheduleEntry    `gorm:"foreignKey:AppealID" json:"schedule,omitempty"`
	Orders    []Order            `gorm:"foreignKey:AppealID" json:"orders,omitempty"`
	Documents []Document         `gorm:"foreignKey:AppealID" json:"documents,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Appeal) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Appeal model
func (Appeal) TableName() string {
	return "appeals"
}

// IsOnHold checks if the appeal is currently on hold
func (a *Appeal) IsOnHold() bool {
	return a.Status == StatusOnHold
}

// HasOrderIssued checks if an order has been issued against the appeal
func (a *Appeal) HasOrderIssued() bool {
	return a.Status == StatusOrderIssued
}
