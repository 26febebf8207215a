package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

// SyncUser upserts the profile keyed by the client-supplied external id.
// The returned flag reports whether a new row was created.
func (s *UserService) SyncUser(ctx context.Context, req transport.SyncUserRequest) (*models.User, bool, error) {
	if req.ExternalID == "" {
		return nil, false, fmt.Errorf("%w: external_id required", ErrValidation)
	}
	if req.Email == "" {
		return nil, false, fmt.Errorf("%w: email required", ErrValidation)
	}
	if req.Name == "" {
		return nil, false, fmt.Errorf("%w: name required", ErrValidation)
	}

	user := &models.User{
		ExternalID:     req.ExternalID,
		Email:          req.Email,
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
	}

	created, err := s.Repo.UpsertUser(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return user, created, nil
}
