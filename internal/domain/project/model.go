// Package project defines web-gen site builder projects.
package project

import "time"

// Project is a user-owned web-gen project as stored in the web_gen_projects
// table and served to the project list view.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	UserID       string    `json:"user_id"`
	IsPublished  bool      `json:"is_published"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	LastEditedAt time.Time `json:"last_edited_at,omitempty"`
}

// Draft carries the client-supplied fields of a create request.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UserID      string `json:"user_id"`
	IsPublished bool   `json:"is_published"`
}
