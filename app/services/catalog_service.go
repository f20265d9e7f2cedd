package services

import (
	"context"
	"log/slog"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
)

// CatalogService lists the read-only product catalog.
type CatalogService struct {
	log      *slog.Logger
	products repositories.ProductStorage
}

func NewCatalogService(log *slog.Logger, products repositories.ProductStorage) *CatalogService {
	return &CatalogService{log: log, products: products}
}

// List returns all products, unfiltered and unpaginated, in storage order.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx)
}
