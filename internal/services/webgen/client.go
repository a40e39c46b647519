package webgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ventaroai/storefront/internal/domain/project"
	"github.com/ventaroai/storefront/pkg/logger"
)

// Sentinel errors for the list controller's local guards.
var (
	ErrEmptyName    = errors.New("project name must not be empty")
	ErrNotConfirmed = errors.New("deletion requires confirmation")
)

// ProjectList drives the project list view against the action dispatch
// endpoint. It keeps its own copy of the visible projects; concurrent edits
// from another session are not reconciled, the list only changes through its
// own mutations or a fresh Load.
type ProjectList struct {
	client   *http.Client
	endpoint *url.URL
	userID   string
	log      *logger.Logger

	projects []project.Project
	loaded   bool
}

// NewProjectList builds a controller bound to one user.
func NewProjectList(client *http.Client, endpoint, userID string, log *logger.Logger) (*ProjectList, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint required")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("userID required")
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.NewDefault("webgen-client")
	}
	return &ProjectList{
		client:   client,
		endpoint: parsed,
		userID:   userID,
		log:      log,
	}, nil
}

// Loaded reports whether the initial fetch has completed.
func (l *ProjectList) Loaded() bool { return l.loaded }

// Projects returns the currently visible list.
func (l *ProjectList) Projects() []project.Project { return l.projects }

// Load fetches the user's projects, replacing local state.
func (l *ProjectList) Load(ctx context.Context) error {
	reqURL := *l.endpoint
	q := reqURL.Query()
	q.Set("userId", l.userID)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("build list request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("list projects: status %d", resp.StatusCode)
	}

	var payload struct {
		Projects []project.Project `json:"projects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode project list: %w", err)
	}

	l.projects = payload.Projects
	l.loaded = true
	return nil
}

// Create dispatches a create action. An empty name is rejected locally with
// ErrEmptyName before any remote call. On success the new project is
// prepended to the visible list and the editor path for it is returned.
func (l *ProjectList) Create(ctx context.Context, name, description string) (project.Project, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return project.Project{}, "", ErrEmptyName
	}

	body := map[string]any{
		"action": "create",
		"project": project.Draft{
			Name:        name,
			Description: strings.TrimSpace(description),
			UserID:      l.userID,
			IsPublished: false,
		},
	}

	var payload struct {
		Project project.Project `json:"project"`
	}
	if err := l.dispatch(ctx, body, &payload); err != nil {
		return project.Project{}, "", err
	}

	l.projects = append([]project.Project{payload.Project}, l.projects...)
	return payload.Project, "/web-gen/editor/" + payload.Project.ID, nil
}

// Delete dispatches a delete action. The confirmation flag must be set by
// the caller; without it no remote call happens. A failed remote call leaves
// local state unchanged; on success exactly the given id is removed.
func (l *ProjectList) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	body := map[string]any{
		"action":    "delete",
		"projectId": id,
	}

	var payload struct {
		Success bool `json:"success"`
	}
	if err := l.dispatch(ctx, body, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return nil
	}

	kept := l.projects[:0:0]
	for _, p := range l.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	l.projects = kept
	return nil
}

func (l *ProjectList) dispatch(ctx context.Context, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal dispatch body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint.String(), bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build dispatch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch action: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("dispatch action: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode dispatch response: %w", err)
	}
	return nil
}
