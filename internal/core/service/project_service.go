package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ViewCounter abstracts the per-project view counter store (Redis).
type ViewCounter interface {
	Increment(ctx context.Context, projectID string) (int64, error)
	Get(ctx context.Context, projectID string) (int64, error)
}

// ActivityRecorder abstracts the async audit-trail queue.
type ActivityRecorder interface {
	Enqueue(in ports.ActivityInput)
}

type ProjectService struct {
	repo       ports.ProjectRepository
	views      ViewCounter
	activities ActivityRecorder
	logger     zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, views ViewCounter, activities ActivityRecorder, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, views: views, activities: activities, logger: logger}
}

func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*ports.ProjectDetail, error) {
	now := time.Now().UTC()
	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Area:        input.Area,
		GithubLink:  input.GithubLink,
		LiveLink:    input.LiveLink,
		TechStack:   input.TechStack,
		Images:      input.Images,
		Videos:      input.Videos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("type", created.Type).Msg("project created")
	s.record(created.ID, domain.ActionProjectCreated, input.ActorID, input.ActorRole, created.Title)

	return toDetail(created, 0), nil
}

// GetProject returns the full record and bumps its view counter. A counter
// failure is logged but never fails the read.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ports.ProjectDetail, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.views.Increment(ctx, project.ID)
	if err != nil {
		s.logger.Warn().Err(err).Str("project_id", project.ID).Msg("view counter unavailable")
		views = 0
	}

	return toDetail(project, views), nil
}

func (s *ProjectService) ListProjects(ctx context.Context, input ports.ListProjectsInput) (*ports.ListProjectsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	projects, total, err := s.repo.List(ctx, ports.ListProjectsFilter{
		Type:   input.Type,
		Area:   input.Area,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ports.ProjectDetail, len(projects))
	for i, p := range projects {
		items[i] = *toDetail(p, 0)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListProjectsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, input ports.UpdateProjectInput) (*ports.ProjectDetail, error) {
	updated, err := s.repo.Update(ctx, input.ID, &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Area:        input.Area,
		GithubLink:  input.GithubLink,
		LiveLink:    input.LiveLink,
		TechStack:   input.TechStack,
		Images:      input.Images,
		Videos:      input.Videos,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.record(updated.ID, domain.ActionProjectUpdated, input.ActorID, input.ActorRole, updated.Title)
	return toDetail(updated, 0), nil
}

func (s *ProjectService) UpdateDescription(ctx context.Context, id, description, actorID, actorRole string) (*ports.ProjectDetail, error) {
	updated, err := s.repo.UpdateDescription(ctx, id, description)
	if err != nil {
		return nil, err
	}

	s.record(updated.ID, domain.ActionProjectUpdated, actorID, actorRole, "description")
	return toDetail(updated, 0), nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id, actorID, actorRole string) (*ports.ProjectDetail, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", id).Str("actor_id", actorID).Msg("project deleted")
	s.record(id, domain.ActionProjectDeleted, actorID, actorRole, deleted.Title)
	return toDetail(deleted, 0), nil
}

// Stats aggregates the catalog size with per-project view counts. View
// lookups are best-effort; a missing counter reads as zero.
func (s *ProjectService) Stats(ctx context.Context) (*ports.ProjectStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	projects, _, err := s.repo.List(ctx, ports.ListProjectsFilter{Page: 1, Limit: maxPageLimit})
	if err != nil {
		return nil, err
	}

	views := make([]ports.ProjectViews, len(projects))
	for i, p := range projects {
		n, err := s.views.Get(ctx, p.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("project_id", p.ID).Msg("view counter unavailable")
			n = 0
		}
		views[i] = ports.ProjectViews{ID: p.ID, Title: p.Title, Views: n}
	}

	return &ports.ProjectStats{TotalProjects: total, Views: views}, nil
}

func (s *ProjectService) record(projectID, action, actorID, actorRole, detail string) {
	if s.activities == nil {
		return
	}
	s.activities.Enqueue(ports.ActivityInput{
		ProjectID: projectID,
		Action:    action,
		ActorID:   actorID,
		ActorRole: actorRole,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func toDetail(p *domain.Project, views int64) *ports.ProjectDetail {
	return &ports.ProjectDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Area:        p.Area,
		GithubLink:  p.GithubLink,
		LiveLink:    p.LiveLink,
		TechStack:   p.TechStack,
		Images:      p.Images,
		Videos:      p.Videos,
		Views:       views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
