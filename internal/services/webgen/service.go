// Package webgen manages web-gen site builder projects.
package webgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/ventaroai/storefront/internal/domain/project"
	"github.com/ventaroai/storefront/internal/storage"
	"github.com/ventaroai/storefront/pkg/logger"
)

// Service validates and persists project mutations behind the action
// dispatch endpoint.
type Service struct {
	store storage.ProjectStore
	log   *logger.Logger
}

// New constructs a webgen service.
func New(store storage.ProjectStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("webgen")
	}
	return &Service{store: store, log: log}
}

// Create stores a new project. Name and owning user are required.
func (s *Service) Create(ctx context.Context, draft project.Draft) (project.Project, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	if draft.Name == "" {
		return project.Project{}, fmt.Errorf("project name is required")
	}
	if strings.TrimSpace(draft.UserID) == "" {
		return project.Project{}, fmt.Errorf("user_id is required")
	}

	created, err := s.store.CreateProject(ctx, draft)
	if err != nil {
		return project.Project{}, err
	}
	s.log.WithField("project_id", created.ID).
		WithField("user_id", created.UserID).
		Info("project created")
	return created, nil
}

// Delete removes a project by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("projectId is required")
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.log.WithField("project_id", id).Info("project deleted")
	return nil
}

// List returns the user's projects, newest-edited first.
func (s *Service) List(ctx context.Context, userID string) ([]project.Project, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("userId is required")
	}
	return s.store.ListProjects(ctx, userID)
}
