// Package storage defines persistence interfaces for the storefront.
package storage

import (
	"context"
	"errors"

	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/domain/project"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ProductStore reads catalog records.
type ProductStore interface {
	// GetActiveProduct returns the active product with the given id, or
	// ErrNotFound.
	GetActiveProduct(ctx context.Context, id string) (product.Product, error)
	// ListActiveProducts returns all active products.
	ListActiveProducts(ctx context.Context) ([]product.Product, error)
}

// ProjectStore persists web-gen projects.
type ProjectStore interface {
	CreateProject(ctx context.Context, draft project.Draft) (project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context, userID string) ([]project.Project, error)
}
