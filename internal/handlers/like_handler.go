package handlers

import (
	"net/http"
	"strconv"

	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/repositories"
	"github.com/novafeed/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	toggleService  *service.ToggleService
	likeRepository repositories.LikeRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(toggleService *service.ToggleService, likeRepo repositories.LikeRepository) *LikeHandler {
	return &LikeHandler{
		toggleService:  toggleService,
		likeRepository: likeRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCountForPost)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
}

// ToggleLike flips the like edge for the given (user, post) pair. The same
// endpoint likes and unlikes; the response reports the resulting state.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.toggleService.ToggleLike(c.Request().Context(), req.UserID, req.PostID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": res.ExistsAfter})
}

// GetLikesCountForPost retrieves the live like count for a post
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.likeRepository.GetLikesCountByPostID(c.Request().Context(), uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": uint(postID), "likes_count": count})
}

// GetUserLikeStatusForPost checks if a user has liked a specific post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
	if err != nil || userID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(c.Request().Context(), uint(userID), uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": uint(postID), "user_id": uint(userID), "has_liked": hasLiked})
}
