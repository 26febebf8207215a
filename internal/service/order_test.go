package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

func newTestService(t *testing.T) *repo.GormRepo {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return &repo.GormRepo{DB: db}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := &OrderService{Repo: newTestService(t)}
	ctx := context.Background()

	item := transport.CreateOrderItem{ProductID: 1, ProductName: "Beach Hat", Quantity: 1, Price: 19.99}

	cases := []struct {
		name string
		req  transport.CreateOrderRequest
	}{
		{"missing user", transport.CreateOrderRequest{Items: []transport.CreateOrderItem{item}}},
		{"no items", transport.CreateOrderRequest{UserID: "u1"}},
		{"zero quantity", transport.CreateOrderRequest{UserID: "u1", Items: []transport.CreateOrderItem{{ProductID: 1, Quantity: 0, Price: 1}}}},
		{"missing product", transport.CreateOrderRequest{UserID: "u1", Items: []transport.CreateOrderItem{{Quantity: 1, Price: 1}}}},
		{"negative price", transport.CreateOrderRequest{UserID: "u1", Items: []transport.CreateOrderItem{{ProductID: 1, Quantity: 1, Price: -1}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.CreateOrder(ctx, tc.req)
			require.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestCreateOrderDefaultsStatusToPending(t *testing.T) {
	svc := &OrderService{Repo: newTestService(t)}

	req := transport.CreateOrderRequest{
		UserID:      "u1",
		TotalAmount: 19.99,
		Items:       []transport.CreateOrderItem{{ProductID: 1, ProductName: "Beach Hat", Quantity: 1, Price: 19.99}},
	}

	order, items, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, items, 1)
	require.Equal(t, order.ID, items[0].OrderID)
}

func TestCreateOrderKeepsCallerTotal(t *testing.T) {
	svc := &OrderService{Repo: newTestService(t)}

	// The total is caller-trusted and deliberately not recomputed.
	req := transport.CreateOrderRequest{
		UserID:      "u1",
		TotalAmount: 1.00,
		Status:      "completed",
		Items:       []transport.CreateOrderItem{{ProductID: 1, ProductName: "Beach Hat", Quantity: 2, Price: 19.99}},
	}

	order, _, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1.00, order.TotalAmount)
	require.Equal(t, "completed", order.Status)
}

func TestAddToCartValidation(t *testing.T) {
	svc := &CartService{Repo: newTestService(t)}
	ctx := context.Background()

	cases := []struct {
		name string
		req  transport.AddToCartRequest
	}{
		{"missing user", transport.AddToCartRequest{ProductID: 1, Quantity: 1}},
		{"missing product", transport.AddToCartRequest{UserID: "u1", Quantity: 1}},
		{"zero quantity", transport.AddToCartRequest{UserID: "u1", ProductID: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.AddToCart(ctx, tc.req)
			require.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestUpdateItemZeroQuantity(t *testing.T) {
	svc := &CartService{Repo: newTestService(t)}

	_, err := svc.UpdateItem(context.Background(), 1, 0)
	require.True(t, errors.Is(err, ErrValidation))
}
