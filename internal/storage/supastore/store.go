// Package supastore implements the storage interfaces on Supabase PostgREST.
package supastore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/domain/project"
	"github.com/ventaroai/storefront/internal/postgrest"
	"github.com/ventaroai/storefront/internal/storage"
)

const (
	productsTable = "products"
	projectsTable = "web_gen_projects"
)

// Store reads and writes storefront data through a PostgREST client.
type Store struct {
	client *postgrest.Client
}

var _ storage.ProductStore = (*Store)(nil)
var _ storage.ProjectStore = (*Store)(nil)

// New wraps a PostgREST client.
func New(client *postgrest.Client) *Store {
	return &Store{client: client}
}

func (s *Store) GetActiveProduct(ctx context.Context, id string) (product.Product, error) {
	resp, err := s.client.From(productsTable).
		Select("*").
		Eq("id", id).
		Eq("is_active", "true").
		Single().
		Execute(ctx)
	if err != nil {
		return product.Product{}, fmt.Errorf("query product %s: %w", id, err)
	}
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable {
		// PostgREST signals "zero rows" for a single-object request this way.
		return product.Product{}, storage.ErrNotFound
	}
	if err := resp.Err(); err != nil {
		return product.Product{}, err
	}

	var row product.Row
	if err := resp.JSON(&row); err != nil {
		return product.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}
	return row.Normalize(), nil
}

func (s *Store) ListActiveProducts(ctx context.Context) ([]product.Product, error) {
	resp, err := s.client.From(productsTable).
		Select("*").
		Eq("is_active", "true").
		Order("id", true).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var rows []product.Row
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Normalize())
	}
	return out, nil
}

// projectRow adds the server-maintained columns to a draft for insertion.
type projectRow struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	UserID       string    `json:"user_id"`
	IsPublished  bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastEditedAt time.Time `json:"last_edited_at"`
}

func (s *Store) CreateProject(ctx context.Context, draft project.Draft) (project.Project, error) {
	now := time.Now().UTC()
	row := projectRow{
		ID:           uuid.NewString(),
		Name:         draft.Name,
		Description:  draft.Description,
		UserID:       draft.UserID,
		IsPublished:  draft.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastEditedAt: now,
	}

	resp, err := s.client.From(projectsTable).Insert(ctx, row)
	if err != nil {
		return project.Project{}, fmt.Errorf("insert project: %w", err)
	}
	if err := resp.Err(); err != nil {
		return project.Project{}, err
	}

	var created []project.Project
	if err := resp.JSON(&created); err != nil {
		return project.Project{}, fmt.Errorf("decode created project: %w", err)
	}
	if len(created) == 0 {
		return project.Project{}, fmt.Errorf("insert project: empty representation")
	}
	return created[0], nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	resp, err := s.client.From(projectsTable).Eq("id", id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if err := resp.Err(); err != nil {
		return err
	}

	var deleted []project.Project
	if err := resp.JSON(&deleted); err != nil {
		return fmt.Errorf("decode deleted project: %w", err)
	}
	if len(deleted) == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) ListProjects(ctx context.Context, userID string) ([]project.Project, error) {
	resp, err := s.client.From(projectsTable).
		Select("*").
		Eq("user_id", userID).
		Order("last_edited_at", false).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var projects []project.Project
	if err := resp.JSON(&projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}
