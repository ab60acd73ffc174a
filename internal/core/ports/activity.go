package ports

import (
	"context"
	"time"

	"github.com/digipodium/showcase-api/internal/core/domain"
)

// ActivityInput is the unit of work handed to the dispatcher on a project
// mutation.
type ActivityInput struct {
	ProjectID string
	Action    string
	ActorID   string
	ActorRole string
	Detail    string
	Timestamp time.Time
}

// ActivityRepository defines persistence operations for the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Activity, error)
}

// ActivityService processes queued activity records and serves the trail.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
	Trail(ctx context.Context, projectID string) ([]*domain.Activity, error)
}
