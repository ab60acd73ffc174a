package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
)

const trailLimit = 50

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single queued activity record.
func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.Activity{
		ProjectID: in.ProjectID,
		Action:    in.Action,
		ActorID:   in.ActorID,
		ActorRole: in.ActorRole,
		Detail:    in.Detail,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("process activity: %w", err)
	}

	s.log.Debug().
		Str("project_id", in.ProjectID).
		Str("action", in.Action).
		Msg("activity recorded")

	return nil
}

// Trail returns the most recent activity entries for a project.
func (s *activityService) Trail(ctx context.Context, projectID string) ([]*domain.Activity, error) {
	return s.repo.ListByProject(ctx, projectID, trailLimit)
}
