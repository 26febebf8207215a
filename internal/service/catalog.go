package service

import (
	"context"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.GetProductsByCategory(ctx, category)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	return s.Repo.GetCategories(ctx)
}
