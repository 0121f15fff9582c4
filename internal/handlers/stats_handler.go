package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/repositories"
)

// StatsHandler serves admin statistics
type StatsHandler struct {
	userRepository    repositories.UserRepository
	guideRepository   repositories.TourGuideRepository
	storyRepository   repositories.StoryRepository
	packageRepository repositories.PackageRepository
	bookingRepository repositories.BookingRepository
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(
	userRepo repositories.UserRepository,
	guideRepo repositories.TourGuideRepository,
	storyRepo repositories.StoryRepository,
	packageRepo repositories.PackageRepository,
	bookingRepo repositories.BookingRepository,
) *StatsHandler {
	return &StatsHandler{
		userRepository:    userRepo,
		guideRepository:   guideRepo,
		storyRepository:   storyRepo,
		packageRepository: packageRepo,
		bookingRepository: bookingRepo,
	}
}

// RegisterStatsRoutes registers admin statistics routes
func (h *StatsHandler) RegisterStatsRoutes(e *echo.Echo) {
	e.GET("/api/stats", h.GetStats)
	e.GET("/api/stats/users", h.GetUserCount)
	e.GET("/api/stats/tourguides", h.GetTourGuideCount)
	e.GET("/api/stats/stories", h.GetStoryCount)
	e.GET("/api/stats/packages", h.GetPackageCount)
	e.GET("/api/stats/revenue", h.GetTotalRevenue)
}

// GetStats returns all four collection counts in one body
func (h *StatsHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	totalUsers, err := h.userRepository.CountUsers(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalTourGuides, err := h.guideRepository.CountTourGuides(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalStories, err := h.storyRepository.CountStories(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch stats")
	}
	totalPackages, err := h.packageRepository.CountPackages(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch stats")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalUsers":      totalUsers,
		"totalTourGuides": totalTourGuides,
		"totalStories":    totalStories,
		"totalPackages":   totalPackages,
	})
}

// GetUserCount returns the user count
func (h *StatsHandler) GetUserCount(c echo.Context) error {
	count, err := h.userRepository.CountUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count users")
	}
	return c.JSON(http.StatusOK, echo.Map{"totalUsers": count})
}

// GetTourGuideCount returns the tour guide count
func (h *StatsHandler) GetTourGuideCount(c echo.Context) error {
	count, err := h.guideRepository.CountTourGuides(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count tour guides")
	}
	return c.JSON(http.StatusOK, echo.Map{"totalTourGuides": count})
}

// GetStoryCount returns the story count
func (h *StatsHandler) GetStoryCount(c echo.Context) error {
	count, err := h.storyRepository.CountStories(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count stories")
	}
	return c.JSON(http.StatusOK, echo.Map{"totalStories": count})
}

// GetPackageCount returns the package count
func (h *StatsHandler) GetPackageCount(c echo.Context) error {
	count, err := h.packageRepository.CountPackages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count packages")
	}
	return c.JSON(http.StatusOK, echo.Map{"totalPackages": count})
}

// GetTotalRevenue sums the price of all bookings, zero when none exist
func (h *StatsHandler) GetTotalRevenue(c echo.Context) error {
	total, err := h.bookingRepository.TotalRevenue(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to compute revenue")
	}
	return c.JSON(http.StatusOK, echo.Map{"totalRevenue": total})
}
