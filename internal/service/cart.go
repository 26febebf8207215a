package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, userID)
}

// AddToCart increments an existing (user, product) row or inserts a new
// one carrying the caller-supplied product snapshot.
func (s *CartService) AddToCart(ctx context.Context, req transport.AddToCartRequest) (*models.CartItem, bool, error) {
	if req.UserID == "" {
		return nil, false, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if req.ProductID == 0 {
		return nil, false, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if req.Quantity == 0 {
		return nil, false, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	item := &models.CartItem{
		UserID:       req.UserID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		ProductName:  req.ProductName,
		ProductPrice: req.ProductPrice,
		ProductImage: req.ProductImage,
	}

	created, err := s.Repo.UpsertCartItem(ctx, item)
	if err != nil {
		return nil, false, err
	}
	return item, created, nil
}

func (s *CartService) UpdateItem(ctx context.Context, itemID uint, quantity uint) (*models.CartItem, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	item, err := s.Repo.UpdateCartItemQuantity(ctx, itemID, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
	}
	return item, err
}

func (s *CartService) RemoveItem(ctx context.Context, itemID uint) error {
	err := s.Repo.DeleteCartItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("cart item %d: %w", itemID, ErrNotFound)
	}
	return err
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	return s.Repo.ClearCart(ctx, userID)
}
