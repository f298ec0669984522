package handlers

import (
	"net/http"
	"strconv"

	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	contentService *service.ContentService
	feedService    *service.FeedService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(contentService *service.ContentService, feedService *service.FeedService) *PostHandler {
	return &PostHandler{
		contentService: contentService,
		feedService:    feedService,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.contentService.CreatePost(c.Request().Context(), req.AuthorID, req.Content, req.Image)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a single post as an enriched view
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	view, err := h.feedService.GetPost(c.Request().Context(), uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeletePost deletes a post and cascades to its comments and likes. The
// requester identity is caller-supplied and trusted; ownership is still
// checked so only the author can delete.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}
	requesterID, err := strconv.ParseUint(c.QueryParam("requester_id"), 10, 32)
	if err != nil || requesterID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "requester_id is required")
	}

	authorID, err := h.contentService.GetPostAuthorID(c.Request().Context(), uint(postID))
	if err != nil {
		return httpError(err)
	}
	if authorID != uint(requesterID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.contentService.DeletePost(c.Request().Context(), uint(postID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
