package ports

import (
	"context"
	"time"
)

// CreateProjectInput carries all data needed to create a project, plus the
// identity of the caller for the activity trail.
type CreateProjectInput struct {
	Title       string
	Description string
	Type        string
	Area        string
	GithubLink  string
	LiveLink    string
	TechStack   []string
	Images      []string
	Videos      []string

	ActorID   string
	ActorRole string
}

// UpdateProjectInput is a full replacement of the mutable project fields.
type UpdateProjectInput struct {
	ID          string
	Title       string
	Description string
	Type        string
	Area        string
	GithubLink  string
	LiveLink    string
	TechStack   []string
	Images      []string
	Videos      []string

	ActorID   string
	ActorRole string
}

// ProjectDetail is the full project view returned by GetProject.
type ProjectDetail struct {
	ID          string
	Title       string
	Description string
	Type        string
	Area        string
	GithubLink  string
	LiveLink    string
	TechStack   []string
	Images      []string
	Videos      []string
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListProjectsInput carries all parameters for the list endpoint.
type ListProjectsInput struct {
	Type   string
	Area   string
	Search string
	Page   int
	Limit  int
}

// ListProjectsResult is returned by ListProjects.
type ListProjectsResult struct {
	Items      []ProjectDetail
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProjectViews pairs a project with its accumulated view count.
type ProjectViews struct {
	ID    string
	Title string
	Views int64
}

// ProjectStats is the aggregate view returned by the stats endpoint.
type ProjectStats struct {
	TotalProjects int64
	Views         []ProjectViews
}

// ProjectService defines use-case operations for the project catalog.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*ProjectDetail, error)
	GetProject(ctx context.Context, id string) (*ProjectDetail, error)
	ListProjects(ctx context.Context, input ListProjectsInput) (*ListProjectsResult, error)
	UpdateProject(ctx context.Context, input UpdateProjectInput) (*ProjectDetail, error)
	UpdateDescription(ctx context.Context, id, description, actorID, actorRole string) (*ProjectDetail, error)
	DeleteProject(ctx context.Context, id, actorID, actorRole string) (*ProjectDetail, error)
	Stats(ctx context.Context) (*ProjectStats, error)
}
