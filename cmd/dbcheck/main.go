package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Skotchmaster/sunnyday_shop/internal/config"
	"github.com/Skotchmaster/sunnyday_shop/internal/database"
	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

// dbcheck dumps the store contents to the console for manual inspection.
// It never mutates anything.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	fmt.Println("=== DATABASE CONTENTS ===")

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Fatalf("users: %v", err)
	}
	fmt.Printf("\nUsers (%d):\n", len(users))
	for _, u := range users {
		fmt.Printf("- ID: %d, ExternalID: %s, Email: %s, Name: %s\n", u.ID, u.ExternalID, u.Email, u.Name)
	}

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		log.Fatalf("products: %v", err)
	}
	fmt.Printf("\nProducts (%d):\n", len(products))
	for _, p := range products {
		fmt.Printf("- ID: %d, Name: %s, Price: $%.2f, Stock: %d\n", p.ID, p.Name, p.Price, p.Stock)
	}

	var cartItems []models.CartItem
	if err := db.Find(&cartItems).Error; err != nil {
		log.Fatalf("cart items: %v", err)
	}
	fmt.Printf("\nCart Items (%d):\n", len(cartItems))
	for _, it := range cartItems {
		fmt.Printf("- User ID: %s, Product ID: %d, Quantity: %d\n", it.UserID, it.ProductID, it.Quantity)
	}

	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		log.Fatalf("orders: %v", err)
	}
	fmt.Printf("\nOrders (%d):\n", len(orders))
	for _, o := range orders {
		fmt.Printf("- ID: %d, User ID: %s, Total: $%.2f, Status: %s\n", o.ID, o.UserID, o.TotalAmount, o.Status)
	}

	var orderItems []models.OrderItem
	if err := db.Find(&orderItems).Error; err != nil {
		log.Fatalf("order items: %v", err)
	}
	fmt.Printf("\nOrder Items (%d):\n", len(orderItems))
	for _, it := range orderItems {
		fmt.Printf("- Order ID: %d, Product: %s, Quantity: %d, Price: $%.2f\n", it.OrderID, it.ProductName, it.Quantity, it.Price)
	}

	var addresses []models.Address
	if err := db.Find(&addresses).Error; err != nil {
		log.Fatalf("addresses: %v", err)
	}
	fmt.Printf("\nAddresses (%d):\n", len(addresses))
	for _, a := range addresses {
		fmt.Printf("- User ID: %s, Street: %s, City: %s, Default: %t\n", a.UserID, a.Street, a.City, a.IsDefault)
	}
}
