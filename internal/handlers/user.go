package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/models"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo) {
	e.POST("/register", h.Register)
	e.GET("/users", h.GetUserByEmail)
	e.GET("/users/all", h.ListUsers)
	e.GET("/users/role", h.GetUserRole)
	e.PUT("/update-user", h.UpdateUser)
}

// Register creates a new user with the Tourist role. Duplicate emails are
// rejected with 400; the check-then-insert pair is not atomic.
func (h *UserHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "First name, last name, and email are required")
	}

	ctx := c.Request().Context()

	existing, err := h.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error registering user")
	}
	if existing != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User with this email already exists")
	}

	photoURL := req.PhotoURL
	if photoURL == "" {
		photoURL = models.DefaultPhotoURL
	}

	user := &models.User{
		FullName: req.FirstName + " " + req.LastName,
		Email:    req.Email,
		PhotoURL: photoURL,
		UserRole: models.RoleTourist,
	}

	userID, err := h.userRepository.CreateUser(ctx, user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error registering user")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"userId":  userID.Hex(),
	})
}

// GetUserByEmail returns a single user looked up by email query param
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, user)
}

// ListUsers returns all users, optionally filtered by a case-insensitive
// name/email search and an exact role match
func (h *UserHandler) ListUsers(c echo.Context) error {
	search := c.QueryParam("search")
	role := c.QueryParam("role")

	users, err := h.userRepository.SearchUsers(c.Request().Context(), search, role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users.")
	}

	return c.JSON(http.StatusOK, users)
}

// GetUserRole returns the stored role for a user, defaulting to Tourist
// when the role field is absent
func (h *UserHandler) GetUserRole(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email is required")
	}

	user, err := h.userRepository.GetUserByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching user role")
	}

	role := user.UserRole
	if role == "" {
		role = models.RoleTourist
	}

	return c.JSON(http.StatusOK, echo.Map{"role": role})
}

// UpdateUser replaces a user's display name and photo and returns the
// post-update document
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "User id, first name, last name, and photo URL are required")
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	fullName := req.FirstName + " " + req.LastName
	user, err := h.userRepository.UpdateProfile(c.Request().Context(), userID, fullName, req.PhotoURL)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating user")
	}

	return c.JSON(http.StatusOK, user)
}
