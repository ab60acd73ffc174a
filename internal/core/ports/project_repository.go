package ports

import (
	"context"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
type ListProjectsFilter struct {
	Type   string // optional: filter by project type/category
	Area   string // optional: filter by area
	Search string // optional: partial match on title or tech stack
	Page   int    // 1-based
	Limit  int    // max rows per page (capped at 100 by service)
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns a page of projects matching filter and the total count.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error)
	UpdateDescription(ctx context.Context, id, description string) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
	Count(ctx context.Context) (int64, error)
}
