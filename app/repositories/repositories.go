// Package repositories holds the MongoDB persistence layer. Services
// depend on the storage interfaces declared here so tests can substitute
// in-memory fakes.
package repositories

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/vastra/app/models"
)

var (
	// ErrNotFound means no document matched the lookup.
	ErrNotFound = errors.New("repositories: not found")
	// ErrDuplicateEmail means the unique index on users.email rejected an insert.
	ErrDuplicateEmail = errors.New("repositories: email already registered")
)

// UserStorage persists and looks up user records.
type UserStorage interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// ProductStorage reads the catalog.
type ProductStorage interface {
	All(ctx context.Context) ([]models.Product, error)
}

// OrderStorage persists placed orders.
type OrderStorage interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
}
