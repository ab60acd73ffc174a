package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is the core catalog record: a single showcased piece of work with
// its links, media references, and classification fields used for browsing.
// Media stays on the external asset host; only URLs are stored here.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type,omitempty"`
	Area        string    `json:"area,omitempty"`
	GithubLink  string    `json:"github_link,omitempty"`
	LiveLink    string    `json:"live_link,omitempty"`
	TechStack   []string  `json:"tech_stack,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Videos      []string  `json:"videos,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
