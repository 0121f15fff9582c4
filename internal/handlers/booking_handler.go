package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/models"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingRepository repositories.BookingRepository
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingRepo repositories.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingRepository: bookingRepo}
}

// RegisterBookingRoutes registers booking-related routes
func (h *BookingHandler) RegisterBookingRoutes(e *echo.Echo) {
	e.POST("/bookings", h.CreateBooking)
	e.GET("/bookings", h.GetBookingsByEmail)
	e.GET("/bookings/all", h.GetAllBookings)
	e.PATCH("/bookings/:id", h.UpdateBookingStatus)
}

// CreateBooking records a pending booking for a tour package
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Package, tourist details, price, and tour date are required")
	}

	booking := &models.Booking{
		PackageID:    req.PackageID,
		PackageName:  req.PackageName,
		TouristName:  req.TouristName,
		TouristEmail: req.TouristEmail,
		TouristImage: req.TouristImage,
		Price:        req.Price,
		TourDate:     req.TourDate,
		GuideName:    req.GuideName,
	}

	bookingID, err := h.bookingRepository.CreateBooking(c.Request().Context(), booking)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating booking")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Booking created successfully",
		"bookingId": bookingID.Hex(),
	})
}

// GetBookingsByEmail returns one tourist's bookings
func (h *BookingHandler) GetBookingsByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email query parameter is required")
	}

	bookings, err := h.bookingRepository.GetBookingsByEmail(c.Request().Context(), email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch bookings")
	}
	if len(bookings) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "No bookings found")
	}

	return c.JSON(http.StatusOK, bookings)
}

// GetAllBookings returns every booking
func (h *BookingHandler) GetAllBookings(c echo.Context) error {
	bookings, err := h.bookingRepository.GetAllBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch bookings")
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus patches a booking's status and reports a normalized
// outcome instead of the driver's raw update result
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid booking ID")
	}

	var req models.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Status is required")
	}

	outcome, err := h.bookingRepository.UpdateStatus(c.Request().Context(), bookingID, req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating booking status")
	}

	return c.JSON(http.StatusOK, outcome)
}
