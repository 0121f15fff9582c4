package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/auth"
	"github.com/wonderbd/tourism-backend/internal/middleware"
)

// AuthHandler issues and demonstrates bearer tokens
type AuthHandler struct {
	tokenService *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(tokenService *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

// RegisterAuthRoutes registers the token routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/jwt", h.IssueToken)
	e.GET("/protected", h.Protected, middleware.TokenAuth(h.tokenService))
}

// IssueToken signs the posted claims into a five-hour bearer token
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims := map[string]interface{}{}
	if err := c.Bind(&claims); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	token, err := h.tokenService.Sign(claims)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error signing token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// Protected echoes the verified claims back to the caller
func (h *AuthHandler) Protected(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Access granted",
		"user":    c.Get("user"),
	})
}
