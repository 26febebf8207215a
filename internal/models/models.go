package models

import (
	"time"
)

// User rows are keyed internally by ID but referenced everywhere else by
// ExternalID, the opaque identity string the client supplies.
type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	ExternalID     string    `gorm:"uniqueIndex;not null"      json:"external_id"`
	Email          string    `gorm:"uniqueIndex;not null"      json:"email"`
	Name           string    `gorm:"not null"                  json:"name"`
	ProfilePicture string    `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name        string    `gorm:"not null"                  json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                  json:"price"`
	Image       string    `json:"image"`
	Category    string    `gorm:"index"                     json:"category"`
	Stock       uint      `gorm:"default:0"                 json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItem carries a snapshot of the product fields taken at add time.
// A later product change must not affect rows already in a cart.
type CartItem struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"                      json:"id"`
	UserID       string    `gorm:"index;uniqueIndex:idx_cart_user_product;not null" json:"user_id"`
	ProductID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null"    json:"product_id"`
	Quantity     uint      `gorm:"default:1;check:quantity>0"                    json:"quantity"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	ProductImage string    `json:"product_image"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"      json:"id"`
	UserID          string    `gorm:"index;not null"                json:"user_id"`
	TotalAmount     float64   `gorm:"not null"                      json:"total_amount"`
	Status          string    `gorm:"not null;default:pending"      json:"status"`
	ShippingAddress string    `gorm:"type:text"                     json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// OrderItem snapshots name and price the same way CartItem does.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID     uint    `gorm:"index;not null"            json:"order_id"`
	ProductID   uint    `gorm:"not null"                  json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    uint    `gorm:"not null"                  json:"quantity"`
	Price       float64 `gorm:"not null"                  json:"price"`
}

type Address struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID    string `gorm:"index;not null"            json:"user_id"`
	Street    string `gorm:"not null"                  json:"street"`
	City      string `gorm:"not null"                  json:"city"`
	State     string `gorm:"not null"                  json:"state"`
	ZipCode   string `gorm:"not null"                  json:"zip_code"`
	Country   string `gorm:"not null"                  json:"country"`
	IsDefault bool   `gorm:"default:false"             json:"is_default"`
}
