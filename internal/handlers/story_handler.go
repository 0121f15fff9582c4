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

// randomStorySampleSize caps the /stories/random response
const randomStorySampleSize = 4

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository repositories.StoryRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository) *StoryHandler {
	return &StoryHandler{storyRepository: storyRepo}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(e *echo.Echo) {
	e.GET("/stories/all", h.GetAllStories)
	e.GET("/stories/random", h.GetRandomStories)
	e.POST("/stories/add", h.AddStory)
	e.GET("/stories", h.GetStoriesByEmail)
	e.PATCH("/stories/remove-image", h.RemoveImage)
	e.PUT("/stories/update", h.UpdateStory)
	e.DELETE("/stories/:id", h.DeleteStory)
}

// GetAllStories returns every story
func (h *StoryHandler) GetAllStories(c echo.Context) error {
	stories, err := h.storyRepository.GetAllStories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch stories")
	}
	return c.JSON(http.StatusOK, stories)
}

// GetRandomStories returns up to four uniformly sampled tourist stories.
// Only an empty sample is an error.
func (h *StoryHandler) GetRandomStories(c echo.Context) error {
	stories, err := h.storyRepository.SampleStories(c.Request().Context(), models.RoleTourist, randomStorySampleSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching stories")
	}
	if len(stories) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No stories found")
	}
	return c.JSON(http.StatusOK, stories)
}

// AddStory creates a story. The images field is accepted as a native array
// or a serialized array string; counts are coerced to integers.
func (h *StoryHandler) AddStory(c echo.Context) error {
	var req models.AddStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title, text, user image, user name, email, and user role are required")
	}

	images := []string(req.Images)
	if images == nil {
		images = []string{}
	}

	story := &models.Story{
		Title:      req.Title,
		Text:       req.Text,
		UserImage:  req.UserImage,
		UserName:   req.UserName,
		Email:      req.Email,
		UserRole:   req.UserRole,
		Images:     images,
		ShareCount: int(req.ShareCount),
		ReactCount: int(req.ReactCount),
	}

	if err := h.storyRepository.CreateStory(c.Request().Context(), story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error adding story")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Story added successfully",
		"story":   story,
	})
}

// GetStoriesByEmail returns the stories owned by one user
func (h *StoryHandler) GetStoriesByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email query parameter is required")
	}

	stories, err := h.storyRepository.GetStoriesByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error while fetching stories")
	}
	if len(stories) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No stories found")
	}

	return c.JSON(http.StatusOK, echo.Map{"stories": stories})
}

// RemoveImage removes one value from a story's image list by value match.
// An unknown story id is 404; a value not present leaves the list
// unchanged and still succeeds.
func (h *StoryHandler) RemoveImage(c echo.Context) error {
	var req models.RemoveImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Story id and image are required")
	}

	storyID, err := primitive.ObjectIDFromHex(req.StoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	story, err := h.storyRepository.RemoveImage(c.Request().Context(), storyID, req.Image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error removing image")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Image removed successfully",
		"story":   story,
	})
}

// UpdateStory replaces a story's title and text and stamps an update time
func (h *StoryHandler) UpdateStory(c echo.Context) error {
	var req models.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Story id, title, and text are required")
	}

	storyID, err := primitive.ObjectIDFromHex(req.StoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	story, err := h.storyRepository.UpdateContent(c.Request().Context(), storyID, req.Title, req.Text)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating story")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Story updated successfully",
		"story":   story,
	})
}

// DeleteStory deletes a story owned by the given email
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	storyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email query parameter is required")
	}

	deleted, err := h.storyRepository.DeleteStory(c.Request().Context(), storyID, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error deleting story")
	}
	if deleted == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Story deleted successfully"})
}
