package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a formal decision issued against an appeal. Order numbers are a
// single global sequence across all appeals, not scoped per appeal.
type Order struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AppealID string `gorm:"type:uuid;not null;index" json:"appeal_id"`
	Appeal   Appeal `gorm:"foreignKey:AppealID" json:"appeal,omitempty"`

	OrderNumber  int        `gorm:"not null;uniqueIndex" json:"order_number"`
	IssueDate    time.Time  `gorm:"not null;index" json:"issue_date"`
	HearingDate  *time.Time `json:"hearing_date,omitempty"`
	Keyword      *string    `gorm:"type:text" json:"keyword,omitempty"`
	AppForLeave  bool       `gorm:"not null;default:false" json:"app_for_leave"`
	LeaveGranted bool       `gorm:"not null;default:false" json:"leave_granted"`
	DocumentURL  *string    `gorm:"type:text" json:"document_url,omitempty"`
	IsPublic     bool       `gorm:"not null;index" json:"is_public"`

	Subjects *OrderSubjects `gorm:"foreignKey:OrderID" json:"subjects,omitempty"`
}

// BeforeCreate hook to generate UUID
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Order model
func (Order) TableName() string {
	return "orders"
}

// OrderSubjects flags which subject areas a decision touches. One row per
// order.
type OrderSubjects struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrderID string `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`

	Land              bool `gorm:"not null;default:false" json:"land"`
	Membership        bool `gorm:"not null;default:false" json:"membership"`
	Compensation      bool `gorm:"not null;default:false" json:"compensation"`
	DescentOfProperty bool `gorm:"not null;default:false" json:"descent_of_property"`
	PMTCancellations  bool `gorm:"not null;default:false" json:"pmt_cancellations"`
	Trespass          bool `gorm:"not null;default:false" json:"trespass"`
}

func (os *OrderSubjects) BeforeCreate(tx *gorm.DB) error {
	if os.ID == "" {
		os.ID = uuid.New().String()
	}
	return nil
}

func (OrderSubjects) TableName() string {
	return "order_subjects"
}
