package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digipodium/showcase-api/internal/core/ports"
)

// ActivityHandler serves the project audit trail.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Trail handles GET /project/activity/:id. Admin only.
//
// @Summary      Project activity trail
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {array}   domain.Activity
// @Failure      403  {object}  errorResponse
// @Router       /project/activity/{id} [get]
func (h *ActivityHandler) Trail(c echo.Context) error {
	entries, err := h.service.Trail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
