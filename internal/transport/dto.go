package transport

import (
	"encoding/json"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type SyncUserRequest struct {
	ExternalID     string `json:"external_id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profile_picture"`
}

type SyncUserResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type AddToCartRequest struct {
	UserID       string  `json:"user_id"`
	ProductID    uint    `json:"product_id"`
	Quantity     uint    `json:"quantity"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
}

type UpdateCartItemRequest struct {
	Quantity uint `json:"quantity"`
}

type CartResponse struct {
	Items []models.CartItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    uint    `json:"quantity"`
	Price       float64 `json:"price"`
}

// ShippingAddress is kept raw: the storefront sends a structured object
// and the order row stores its serialized text form.
type CreateOrderRequest struct {
	UserID          string            `json:"user_id"`
	TotalAmount     float64           `json:"total_amount"`
	Status          string            `json:"status"`
	ShippingAddress json.RawMessage   `json:"shipping_address"`
	Items           []CreateOrderItem `json:"items"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID uint   `json:"order_id"`
}

type OrderView struct {
	ID              uint    `json:"id"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ShippingAddress string  `json:"shipping_address"`
}

type OrdersResponse struct {
	Orders []OrderView `json:"orders"`
}

type CreateAddressRequest struct {
	UserID    string `json:"user_id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

type AddressesResponse struct {
	Addresses []models.Address `json:"addresses"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
