package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles
const (
	RoleAdministrator = "administrator"
	RoleShopManager   = "shop_manager"
	RoleCustomer      = "customer"
)

// Capabilities checked by admin routes
const (
	// CapabilityManageStore covers category CRUD and the AJAX endpoints
	CapabilityManageStore = "manage_woocommerce"
	// CapabilityManageOptions covers the slider settings page
	CapabilityManageOptions = "manage_options"
)

var roleCapabilities = map[string][]string{
	RoleAdministrator: {CapabilityManageStore, CapabilityManageOptions},
	RoleShopManager:   {CapabilityManageStore},
}

type User struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `gorm:"not null" json:"name"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	Role        string     `gorm:"not null;default:customer" json:"role"` // administrator, shop_manager, customer
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// Can reports whether the user's role grants capability
func (u *User) Can(capability string) bool {
	if u == nil || !u.IsActive {
		return false
	}
	for _, c := range roleCapabilities[u.Role] {
		if c == capability {
			return true
		}
	}
	return false
}

// IsValidRole reports whether role is a known role
func IsValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleShopManager, RoleCustomer:
		return true
	}
	return false
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
