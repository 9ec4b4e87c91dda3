package models

import "time"

// OrderStatus represents the delivery lifecycle of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAssigned  OrderStatus = "ASSIGNED"
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusDelivered is a terminal alias that appears in older feeds.
	// The engine never produces it; consumers must still treat it as finished.
	StatusDelivered OrderStatus = "DELIVERED"
)

type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	CustomerID uint        `json:"customer_id" gorm:"not null"`
	Customer   User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	StoreID    uint        `json:"store_id" gorm:"not null"`
	Store      Store       `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	RiderID    *uint       `json:"rider_id"` // nil iff status is PENDING
	Rider      *Rider      `json:"rider,omitempty" gorm:"foreignKey:RiderID"`
	Pickup     string      `json:"pickup" gorm:"not null"`
	Dropoff    string      `json:"dropoff" gorm:"not null"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Items      []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OrderItem is created atomically with its Order and immutable afterward.
type OrderItem struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	OrderID  uint     `json:"order_id" gorm:"not null"`
	FoodID   uint     `json:"food_id" gorm:"not null"`
	Food     FoodItem `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int      `json:"quantity" gorm:"not null"`
}
