package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type projectRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Area        string   `json:"area"`
	GithubLink  string   `json:"github_link" validate:"omitempty,url"`
	LiveLink    string   `json:"live_link"   validate:"omitempty,url"`
	TechStack   []string `json:"tech_stack"`
	Images      []string `json:"images"      validate:"dive,url"`
	Videos      []string `json:"videos"      validate:"dive,url"`
}

type descriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

// --- Response types ---
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type projectResponse struct {
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
	Views       int64     `json:"views,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listProjectsResponse struct {
	Data       []projectResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type projectViewsResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

type statsResponse struct {
	TotalProjects int64                  `json:"total_projects"`
	Views         []projectViewsResponse `json:"views"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
