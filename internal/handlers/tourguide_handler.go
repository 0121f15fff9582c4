package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// tourGuideSampleSize caps the /tourguides sampled response
const tourGuideSampleSize = 6

// TourGuideHandler handles tour guide HTTP requests
type TourGuideHandler struct {
	guideRepository repositories.TourGuideRepository
}

// NewTourGuideHandler creates a new TourGuideHandler
func NewTourGuideHandler(guideRepo repositories.TourGuideRepository) *TourGuideHandler {
	return &TourGuideHandler{guideRepository: guideRepo}
}

// RegisterTourGuideRoutes registers tour guide routes
func (h *TourGuideHandler) RegisterTourGuideRoutes(e *echo.Echo) {
	e.GET("/tourguides", h.GetRandomTourGuides)
	e.GET("/tourguides/all", h.GetAllTourGuides)
	e.GET("/tourguides/:id", h.GetTourGuide)
}

// GetRandomTourGuides returns up to six uniformly sampled guides
func (h *TourGuideHandler) GetRandomTourGuides(c echo.Context) error {
	guides, err := h.guideRepository.SampleTourGuides(c.Request().Context(), tourGuideSampleSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching tour guides")
	}
	if len(guides) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No tour guides found")
	}
	return c.JSON(http.StatusOK, guides)
}

// GetAllTourGuides returns every guide
func (h *TourGuideHandler) GetAllTourGuides(c echo.Context) error {
	guides, err := h.guideRepository.GetAllTourGuides(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch tour guides")
	}
	return c.JSON(http.StatusOK, guides)
}

// GetTourGuide returns a single guide by id; a malformed id is 400,
// a valid-but-absent one 404
func (h *TourGuideHandler) GetTourGuide(c echo.Context) error {
	guideID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tour guide ID")
	}

	guide, err := h.guideRepository.GetTourGuideByID(c.Request().Context(), guideID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Tour guide not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching tour guide")
	}

	return c.JSON(http.StatusOK, guide)
}
