package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settlement is one of the eight settlements the tribunal serves. SortOrder
// doubles as the settlement prefix in file numbers.
type Settlement struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code      string `gorm:"size:10;not null;uniqueIndex" json:"code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;uniqueIndex" json:"sort_order"`
}

func (s *Settlement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

func (Settlement) TableName() string {
	return "settlements"
}

// IssueType categorizes what an appeal is about (land, membership, ...).
type IssueType struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code      string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (it *IssueType) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return nil
}

func (IssueType) TableName() string {
	return "issue_types"
}

// AppealStatus is an entry in the open status vocabulary. Status updates are
// validated against this table, never against a hardcoded list.
type AppealStatus struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code      string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (as *AppealStatus) BeforeCreate(tx *gorm.DB) error {
	if as.ID == "" {
		as.ID = uuid.New().String()
	}
	return nil
}

func (AppealStatus) TableName() string {
	return "appeal_statuses"
}

// AppealStage is an entry in the open stage vocabulary: the numbered codes
// 1..5 plus free-text legacy stage names carried over from the old system.
type AppealStage struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Code      string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sort_order"`
}

func (as *AppealStage) BeforeCreate(tx *gorm.DB) error {
	if as.ID == "" {
		as.ID = uuid.New().String()
	}
	return nil
}

func (AppealStage) TableName() string {
	return "appeal_stages"
}
