package models

import "time"

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRider      Role = "RIDER"
	RoleStoreOwner Role = "STORE_OWNER"
	RoleAdmin      Role = "ADMIN"
)

// AdminEmail/AdminPassword are the built-in administrator credentials.
// The admin identity is never persisted; login short-circuits on this pair.
const (
	AdminEmail    = "admin"
	AdminPassword = "admin123"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'CUSTOMER'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Rider is the courier profile owned 1:1 by a RIDER user.
type Rider struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Latitude  float64   `json:"latitude" gorm:"default:0"`
	Longitude float64   `json:"longitude" gorm:"default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
