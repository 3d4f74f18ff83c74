package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleSuperadmin  = "superadmin"
	RoleAdmin       = "admin"
	RoleStaff       = "staff"
	RoleBoardMember = "board_member"
	RoleUser        = "user"
)

type User struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"size:100;not null" json:"last_name"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"size:20;not null;default:user" json:"role"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// FullName returns "First Last"
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CanManageAppeals reports whether the role may mutate appeal records
func (u *User) CanManageAppeals() bool {
	switch u.Role {
	case RoleSuperadmin, RoleAdmin, RoleStaff:
		return true
	}
	return false
}

// IsValidRole checks if the role is one of the known roles
func IsValidRole(role string) bool {
	switch role {
	case RoleSuperadmin, RoleAdmin, RoleStaff, RoleBoardMember, RoleUser:
		return true
	}
	return false
}
