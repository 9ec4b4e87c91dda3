package models

import "time"

type Store struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	OwnerID   uint       `json:"owner_id" gorm:"uniqueIndex;not null"` // one store per owner
	Owner     User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name      string     `json:"name" gorm:"not null"`
	Address   string     `json:"address"`
	IsOpen    bool       `json:"is_open" gorm:"default:true"`
	Menu      []FoodItem `json:"menu,omitempty" gorm:"foreignKey:StoreID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type FoodItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoreID   uint      `json:"store_id" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
