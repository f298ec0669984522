package handlers

import (
	"net/http"
	"strconv"

	"github.com/novafeed/backend/internal/models"
	"github.com/novafeed/backend/internal/repositories"
	"github.com/novafeed/backend/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	feedService    *service.FeedService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, feedService *service.FeedService) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		feedService:    feedService,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.POST("/users", h.CreateUser)
	g.GET("/users", h.GetUsers)
	g.GET("/users/:id", h.GetUserProfile)
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
		Bio:   req.Bio,
	}
	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// GetUsers retrieves all users
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUserProfile returns the aggregated profile view of a user
func (h *UserHandler) GetUserProfile(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	view, err := h.feedService.GetUserProfile(c.Request().Context(), uint(userID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}
