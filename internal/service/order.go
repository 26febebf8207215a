package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// CreateOrder stores the order with the caller-supplied total and the
// per-line price snapshots as-is. The total is not recomputed from the
// lines.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, []models.OrderItem, error) {
	if req.UserID == "" {
		return nil, nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for i := range req.Items {
		if req.Items[i].ProductID == 0 {
			return nil, nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if req.Items[i].Quantity == 0 {
			return nil, nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		if req.Items[i].Price < 0 {
			return nil, nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}

		items = append(items, models.OrderItem{
			ProductID:   req.Items[i].ProductID,
			ProductName: req.Items[i].ProductName,
			Quantity:    req.Items[i].Quantity,
			Price:       req.Items[i].Price,
		})
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	order := &models.Order{
		UserID:          req.UserID,
		TotalAmount:     req.TotalAmount,
		Status:          status,
		ShippingAddress: string(req.ShippingAddress),
	}

	if err := s.Repo.CreateOrder(ctx, order, items); err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}
