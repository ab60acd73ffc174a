package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/digipodium/showcase-api/internal/api/metrics"
	"github.com/digipodium/showcase-api/internal/core/domain"
	"github.com/digipodium/showcase-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for the project catalog.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /project/add.
//
// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /project/add [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	actorID, actorRole, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.CreateProject(c.Request().Context(), toCreateInput(req, actorID, actorRole))
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(detail.Type).Inc()
	return c.JSON(http.StatusCreated, toProjectResponse(detail))
}

// List handles GET /project/getall with optional type/area/search filters.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  false  "Filter by type/category"
// @Param        area    query     string  false  "Filter by area"
// @Param        search  query     string  false  "Partial match on title or tech stack"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listProjectsResponse
// @Failure      401     {object}  errorResponse
// @Router       /project/getall [get]
func (h *ProjectHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListProjects(c.Request().Context(), ports.ListProjectsInput{
		Type:   c.QueryParam("type"),
		Area:   c.QueryParam("area"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /project/get/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      404  {object}  errorResponse
// @Router       /project/get/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	detail, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}

	metrics.ProjectViewsTotal.Inc()
	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// Update handles PUT /project/update/:id as a full replacement.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /project/update/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	actorID, actorRole, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.UpdateProject(c.Request().Context(), toUpdateInput(c.Param("id"), req, actorID, actorRole))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// PatchDescription handles PATCH /project/update/:id, touching only the
// description.
//
// @Summary      Update a project description
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Project id"
// @Param        body  body      descriptionRequest  true  "New description"
// @Success      200   {object}  projectResponse
// @Failure      404   {object}  errorResponse
// @Router       /project/update/{id} [patch]
func (h *ProjectHandler) PatchDescription(c echo.Context) error {
	var req descriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	actorID, actorRole, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.UpdateDescription(c.Request().Context(), c.Param("id"), req.Description, actorID, actorRole)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// Delete handles DELETE /project/delete/:id. Admin only.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /project/delete/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actorID, actorRole, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.DeleteProject(c.Request().Context(), c.Param("id"), actorID, actorRole)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "project not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProjectResponse(detail))
}

// Stats handles GET /project/stats. Admin only.
//
// @Summary      Catalog statistics
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  errorResponse
// @Router       /project/stats [get]
func (h *ProjectHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}
