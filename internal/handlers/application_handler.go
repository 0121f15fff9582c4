package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/models"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ApplicationHandler handles guide application HTTP requests
type ApplicationHandler struct {
	applicationRepository repositories.ApplicationRepository
	guideRepository       repositories.TourGuideRepository
	userRepository        repositories.UserRepository
	logger                *zap.SugaredLogger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(
	applicationRepo repositories.ApplicationRepository,
	guideRepo repositories.TourGuideRepository,
	userRepo repositories.UserRepository,
	logger *zap.SugaredLogger,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepository: applicationRepo,
		guideRepository:       guideRepo,
		userRepository:        userRepo,
		logger:                logger,
	}
}

// RegisterApplicationRoutes registers guide application routes
func (h *ApplicationHandler) RegisterApplicationRoutes(e *echo.Echo) {
	e.POST("/guideapplication", h.SubmitApplication)
	e.GET("/guideapplication/all", h.GetAllApplications)
	e.POST("/manageApplication", h.ManageApplication)
}

// SubmitApplication records a pending guide application. Languages are
// accepted as an array or a comma-separated string.
func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	var req models.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Title, reason, CV link, name, and email are required")
	}

	languages := []string(req.Languages)
	if languages == nil {
		languages = []string{}
	}

	application := &models.GuideApplication{
		Title:      req.Title,
		Reason:     req.Reason,
		CVLink:     req.CVLink,
		Name:       req.Name,
		Email:      req.Email,
		UserRole:   req.UserRole,
		Image:      req.Image,
		Age:        int(req.Age),
		Experience: req.Experience,
		Speciality: req.Speciality,
		Languages:  languages,
		Gender:     req.Gender,
	}

	if err := h.applicationRepository.CreateApplication(c.Request().Context(), application); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error submitting application")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Application submitted successfully",
		"guideApplication": application,
	})
}

// GetAllApplications lists pending applications; an empty collection is 404
func (h *ApplicationHandler) GetAllApplications(c echo.Context) error {
	applications, err := h.applicationRepository.GetAllApplications(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch applications")
	}
	if len(applications) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No applications found")
	}
	return c.JSON(http.StatusOK, applications)
}

// ManageApplication accepts or rejects a pending application. Accepting
// creates a tour guide, promotes the applicant's user role, and deletes the
// application. The three writes are not transactional; guide insert runs
// first so a partial failure leaves the application visible for retry.
func (h *ApplicationHandler) ManageApplication(c echo.Context) error {
	var req models.ManageApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Application id and an action of accept or reject are required")
	}

	applicationID, err := primitive.ObjectIDFromHex(req.ApplicationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid application ID")
	}

	ctx := c.Request().Context()

	application, err := h.applicationRepository.GetApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Application not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching application")
	}

	if req.Action == "reject" {
		if _, err := h.applicationRepository.DeleteApplication(ctx, applicationID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Error rejecting application")
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Application rejected"})
	}

	guide := &models.TourGuide{
		GuideID:      uuid.NewString(),
		Name:         application.Name,
		Age:          application.Age,
		Gender:       application.Gender,
		Languages:    application.Languages,
		Experience:   application.Experience,
		Speciality:   application.Speciality,
		Rating:       0,
		Availability: "Available",
		Image:        application.Image,
		Email:        application.Email,
		UserRole:     models.RoleTourGuide,
	}

	if err := h.guideRepository.CreateTourGuide(ctx, guide); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating tour guide")
	}

	if err := h.userRepository.UpdateRoleByEmail(ctx, application.Email, models.RoleTourGuide); err != nil {
		h.logger.Errorf("guide created but role update failed for %s: %v", application.Email, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating user role")
	}

	if _, err := h.applicationRepository.DeleteApplication(ctx, applicationID); err != nil {
		h.logger.Errorf("guide created but application %s not deleted: %v", req.ApplicationID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error removing application")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Application accepted"})
}
