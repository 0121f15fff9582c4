package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wonderbd/tourism-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PackageHandler handles tour package HTTP requests
type PackageHandler struct {
	packageRepository repositories.PackageRepository
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageRepo repositories.PackageRepository) *PackageHandler {
	return &PackageHandler{packageRepository: packageRepo}
}

// RegisterPackageRoutes registers tour package routes
func (h *PackageHandler) RegisterPackageRoutes(e *echo.Echo) {
	e.GET("/packages/all", h.GetAllPackages)
	e.GET("/packages/:id", h.GetPackage)
}

// GetAllPackages returns every tour package
func (h *PackageHandler) GetAllPackages(c echo.Context) error {
	packages, err := h.packageRepository.GetAllPackages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch packages")
	}
	return c.JSON(http.StatusOK, packages)
}

// GetPackage returns a single tour package by id
func (h *PackageHandler) GetPackage(c echo.Context) error {
	packageID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid package ID")
	}

	pkg, err := h.packageRepository.GetPackageByID(c.Request().Context(), packageID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Package not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching package")
	}

	return c.JSON(http.StatusOK, pkg)
}
