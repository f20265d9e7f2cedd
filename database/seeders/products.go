// Package seeders loads the initial catalog. The API itself never writes
// products; this is the out-of-band path that populates them.
package seeders

import (
	"context"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
)

// Catalog is the default product set for a fresh installation.
var Catalog = []models.Product{
	{ID: 1, Name: "Kanjivaram Silk Saree", Description: "Handwoven pure silk saree with gold zari border", Price: 12499, Category: "silk", Material: "Pure Silk", Image: "/images/kanjivaram-1.jpg"},
	{ID: 2, Name: "Banarasi Georgette Saree", Description: "Lightweight georgette with brocade work", Price: 5999, Category: "georgette", Material: "Georgette", Image: "/images/banarasi-1.jpg"},
	{ID: 3, Name: "Chanderi Cotton Saree", Description: "Sheer cotton-silk blend in pastel tones", Price: 2799, Category: "cotton", Material: "Cotton Silk", Image: "/images/chanderi-1.jpg"},
	{ID: 4, Name: "Mysore Crepe Saree", Description: "Soft crepe with minimalist temple border", Price: 3499, Category: "crepe", Material: "Crepe", Image: "/images/mysore-1.jpg"},
	{ID: 5, Name: "Tussar Silk Saree", Description: "Raw tussar texture with hand-block prints", Price: 4599, Category: "silk", Material: "Tussar Silk", Image: "/images/tussar-1.jpg"},
	{ID: 6, Name: "Linen Handloom Saree", Description: "Everyday handloom linen with contrast pallu", Price: 2199, Category: "linen", Material: "Linen", Image: "/images/linen-1.jpg"},
}

// SeedProducts replaces the products collection with the default catalog.
func SeedProducts(ctx context.Context, repo *repositories.ProductRepository) error {
	return repo.Seed(ctx, Catalog)
}
