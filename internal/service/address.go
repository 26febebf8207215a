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

type AddressService struct {
	Repo *repo.GormRepo
}

func (s *AddressService) ListAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.Repo.ListAddresses(ctx, userID)
}

func (s *AddressService) CreateAddress(ctx context.Context, req transport.CreateAddressRequest) (*models.Address, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user_id required", ErrValidation)
	}
	if req.Street == "" || req.City == "" || req.State == "" || req.ZipCode == "" || req.Country == "" {
		return nil, fmt.Errorf("%w: street, city, state, zip_code and country required", ErrValidation)
	}

	addr := &models.Address{
		UserID:    req.UserID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	if err := s.Repo.CreateAddress(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, id uint) error {
	err := s.Repo.DeleteAddress(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("address %d: %w", id, ErrNotFound)
	}
	return err
}
