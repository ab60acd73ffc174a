package handler

import (
	"github.com/digipodium/showcase-api/internal/core/ports"
)

func toCreateInput(req projectRequest, actorID, actorRole string) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Area:        req.Area,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
		TechStack:   req.TechStack,
		Images:      req.Images,
		Videos:      req.Videos,
		ActorID:     actorID,
		ActorRole:   actorRole,
	}
}

func toUpdateInput(id string, req projectRequest, actorID, actorRole string) ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Area:        req.Area,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
		TechStack:   req.TechStack,
		Images:      req.Images,
		Videos:      req.Videos,
		ActorID:     actorID,
		ActorRole:   actorRole,
	}
}

func toProjectResponse(d *ports.ProjectDetail) projectResponse {
	return projectResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        d.Type,
		Area:        d.Area,
		GithubLink:  d.GithubLink,
		LiveLink:    d.LiveLink,
		TechStack:   d.TechStack,
		Images:      d.Images,
		Videos:      d.Videos,
		Views:       d.Views,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListProjectsResult) listProjectsResponse {
	items := make([]projectResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toProjectResponse(&r.Items[i])
	}
	return listProjectsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toStatsResponse(s *ports.ProjectStats) statsResponse {
	views := make([]projectViewsResponse, len(s.Views))
	for i, v := range s.Views {
		views[i] = projectViewsResponse{ID: v.ID, Title: v.Title, Views: v.Views}
	}
	return statsResponse{TotalProjects: s.TotalProjects, Views: views}
}
