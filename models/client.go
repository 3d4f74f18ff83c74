package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is an individual who can be a party to an appeal.
type Client struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	MemberID   *string `gorm:"size:50;index" json:"member_id,omitempty"`
	Title      *string `gorm:"size:20" json:"title,omitempty"`
	FirstName  string  `gorm:"size:100;not null;index" json:"first_name"`
	MiddleName *string `gorm:"size:100" json:"middle_name,omitempty"`
	LastName   string  `gorm:"size:100;not null;index" json:"last_name"`

	Address1   *string `gorm:"size:200" json:"address_1,omitempty"`
	Address2   *string `gorm:"size:200" json:"address_2,omitempty"`
	City       *string `gorm:"size:100" json:"city,omitempty"`
	Province   *string `gorm:"size:50" json:"province,omitempty"`
	PostalCode *string `gorm:"size:20" json:"postal_code,omitempty"`

	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhoneHome   *string    `gorm:"size:30" json:"phone_home,omitempty"`
	PhoneWork   *string    `gorm:"size:30" json:"phone_work,omitempty"`
	PhoneCell   *string    `gorm:"size:30" json:"phone_cell,omitempty"`
	Email       *string    `gorm:"size:255;uniqueIndex" json:"email,omitempty"`

	Settlement *string `gorm:"size:100" json:"settlement,omitempty"`
	OrgName    *string `gorm:"size:200" json:"org_name,omitempty"`
	JobTitle   *string `gorm:"size:100" json:"job_title,omitempty"`
	Department *string `gorm:"size:100" json:"department,omitempty"`
	Notes      *string `gorm:"type:text" json:"notes,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}

// FullName returns "First Last"
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
