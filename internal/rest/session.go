package rest

import (
	"context"
	"net/http"
	"personamart/domain"
	"personamart/pkg/logger"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type SimulationService interface {
	GenerateSession(ctx context.Context, userID uint, durationMinutes int) (domain.ShoppingSession, error)
	AnalyzePersona(ctx context.Context, userID uint) (domain.PersonaAnalysis, error)
}

type SessionHandler struct {
	simulationService SimulationService
	timeout           time.Duration
}

func NewSessionHandler(simulationService SimulationService) *SessionHandler {
	return &SessionHandler{
		simulationService: simulationService,
		timeout:           10 * time.Second,
	}
}

func (h *SessionHandler) GenerateSession(c echo.Context) error {
	userIDStr := c.Param("user_id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	durationMinutes, err := strconv.Atoi(c.QueryParam("duration"))
	if err != nil || durationMinutes <= 0 {
		durationMinutes = 30
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	session, err := h.simulationService.GenerateSession(ctx, uint(userID), durationMinutes)
	if err != nil {
		logger.Error("Failed to generate shopping session", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) AnalyzePersona(c echo.Context) error {
	userIDStr := c.Param("user_id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	analysis, err := h.simulationService.AnalyzePersona(ctx, uint(userID))
	if err != nil {
		logger.Error("Failed to analyze persona", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, analysis)
}
