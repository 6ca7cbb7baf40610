package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/fenzolabs/fenzo-backend/pkg/enums"
)

// User is an operator account for the admin surface. Shoppers never have
// accounts; the storefront is anonymous.
type User struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string           `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string           `gorm:"column:password_hash;not null"`
	Role         enums.MemberRole `gorm:"column:role;not null;default:'staff'"`
	IsActive     bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
