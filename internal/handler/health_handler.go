package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ascend/internal/repository"
)

// HealthHandler handles the root ping and the database connectivity probe.
type HealthHandler struct {
	health repository.HealthRepository
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(health repository.HealthRepository) *HealthHandler {
	return &HealthHandler{health: health}
}

// Root godoc
// @Summary Root ping
// @Tags health
// @Produce plain
// @Success 200 {string} string "Server is running!"
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running!")
}

// CheckDB godoc
// @Summary Check database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /check-db [get]
func (h *HealthHandler) CheckDB(c echo.Context) error {
	if err := h.health.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"message": "Database connection failed",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Database connected successfully!",
	})
}
