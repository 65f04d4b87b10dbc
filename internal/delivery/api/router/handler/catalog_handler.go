package handler

import (
	"net/http"

	"lostfound/internal/delivery/api/response"
	"lostfound/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// BuildingsResponse is the body of GET /buildings
type BuildingsResponse struct {
	Buildings []entity.Building `json:"buildings"`
}

// ListCategories returns the closed category set in picker order
func ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, CategoriesResponse{Categories: entity.CategoryNames()})
}

// ListBuildings returns the campus building picker
func ListBuildings(c echo.Context) error {
	return response.Success(c, http.StatusOK, BuildingsResponse{Buildings: entity.Buildings})
}

// HealthCheck reports liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
