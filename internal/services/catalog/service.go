// Package catalog resolves product records from the live store with a fixed
// fallback catalog behind it.
package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/metrics"
	"github.com/ventaroai/storefront/internal/storage"
	"github.com/ventaroai/storefront/pkg/logger"
)

// ErrNotFound reports that neither the live store nor the fallback catalog
// has the requested product.
var ErrNotFound = errors.New("product not found")

// Service answers product reads. Resolution is strictly live-row OR
// fallback-row; the two sources are never merged field-by-field. A nil store
// puts the service in fallback-only mode.
type Service struct {
	store    storage.ProductStore
	fallback product.Catalog
	log      *logger.Logger
}

// New constructs a catalog service. The fallback catalog is injected so tests
// can substitute their own dataset.
func New(store storage.ProductStore, fallback product.Catalog, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("catalog")
	}
	if fallback == nil {
		fallback = product.Catalog{}
	}
	return &Service{store: store, fallback: fallback, log: log}
}

// Resolve returns the active product with the given id. Store errors and
// empty results both route to the fallback catalog; only when neither source
// has the id does it return ErrNotFound.
func (s *Service) Resolve(ctx context.Context, id string) (product.Product, error) {
	if s.store != nil {
		p, err := s.store.GetActiveProduct(ctx, id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).WithField("product_id", id).Warn("live product lookup failed, trying fallback")
		}
	}

	if p, ok := s.fallback[id]; ok {
		metrics.RecordCatalogFallback()
		return p, nil
	}
	return product.Product{}, ErrNotFound
}

// List returns all active products. When the live store cannot answer, the
// full fallback catalog is served instead.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	if s.store != nil {
		products, err := s.store.ListActiveProducts(ctx)
		if err == nil && len(products) > 0 {
			return products, nil
		}
		if err != nil {
			s.log.WithError(err).Warn("live product listing failed, serving fallback catalog")
		}
	}

	metrics.RecordCatalogFallback()
	out := make([]product.Product, 0, len(s.fallback))
	for _, p := range s.fallback {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
