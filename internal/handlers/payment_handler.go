package handlers

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/models"
	"github.com/wonderbd/tourism-backend/internal/payments"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.uber.org/zap"
)

// paymentCurrency is the charge currency for all payment intents
const paymentCurrency = "usd"

// PaymentHandler handles payment-intent HTTP requests
type PaymentHandler struct {
	paymentRepository repositories.PaymentRepository
	provider          payments.Client
	logger            *zap.SugaredLogger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentRepo repositories.PaymentRepository, provider payments.Client, logger *zap.SugaredLogger) *PaymentHandler {
	return &PaymentHandler{
		paymentRepository: paymentRepo,
		provider:          provider,
		logger:            logger,
	}
}

// RegisterPaymentRoutes registers payment-related routes
func (h *PaymentHandler) RegisterPaymentRoutes(e *echo.Echo) {
	e.POST("/create-payment-intent", h.CreatePaymentIntent)
	e.POST("/payments/update", h.UpdatePaymentStatus)
}

// CreatePaymentIntent asks the payment provider for an intent, records a
// pending payment keyed by the intent id, and returns the client secret
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req models.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Booking id is required")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must be a positive number")
	}

	// Round, don't truncate: 19.99*100 is 1998.999… in float64
	amountCents := int64(math.Round(req.Amount * 100))

	intent, err := h.provider.CreateIntent(amountCents, paymentCurrency)
	if err != nil {
		h.logger.Errorf("payment provider error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	payment := &models.Payment{
		PaymentIntentID: intent.ID,
		BookingID:       req.BookingID,
		Amount:          req.Amount,
	}
	if err := h.paymentRepository.CreatePayment(c.Request().Context(), payment); err != nil {
		h.logger.Errorf("failed to record payment %s: %v", intent.ID, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error recording payment")
	}

	return c.JSON(http.StatusOK, echo.Map{"clientSecret": intent.ClientSecret})
}

// UpdatePaymentStatus sets the status of a payment matched by its intent id
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	var req models.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payment intent id and status are required")
	}

	outcome, err := h.paymentRepository.UpdateStatus(c.Request().Context(), req.PaymentIntentID, req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating payment status")
	}

	return c.JSON(http.StatusOK, outcome)
}
