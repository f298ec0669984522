package handlers

import (
	"net/http"

	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow toggle HTTP requests
type FollowHandler struct {
	toggleService *service.ToggleService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(toggleService *service.ToggleService) *FollowHandler {
	return &FollowHandler{toggleService: toggleService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow", h.ToggleFollow)
}

// ToggleFollow flips the follow edge for the given (follower, following)
// pair and reports the resulting state.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	var req models.ToggleFollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.toggleService.ToggleFollow(c.Request().Context(), req.FollowerID, req.FollowingID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"following": res.ExistsAfter})
}
