// Package memory is an in-memory implementation of the storage interfaces.
// It is safe for concurrent use and is primarily intended for tests and
// local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/domain/project"
	"github.com/ventaroai/storefront/internal/storage"
)

// Store holds products and projects in process memory.
type Store struct {
	mu       sync.RWMutex
	products map[string]product.Product
	projects map[string]project.Project
}

var _ storage.ProductStore = (*Store)(nil)
var _ storage.ProjectStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		products: make(map[string]product.Product),
		projects: make(map[string]project.Project),
	}
}

// SeedProducts loads catalog records, replacing existing ids.
func (s *Store) SeedProducts(products ...product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.products[p.ID] = p
	}
}

func (s *Store) GetActiveProduct(_ context.Context, id string) (product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return product.Product{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListActiveProducts(_ context.Context) ([]product.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]product.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateProject(_ context.Context, draft project.Draft) (project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	proj := project.Project{
		ID:           uuid.NewString(),
		Name:         draft.Name,
		Description:  draft.Description,
		UserID:       draft.UserID,
		IsPublished:  draft.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastEditedAt: now,
	}
	s.projects[proj.ID] = proj
	return proj, nil
}

func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *Store) ListProjects(_ context.Context, userID string) ([]project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]project.Project, 0)
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastEditedAt.After(out[j].LastEditedAt) })
	return out, nil
}
