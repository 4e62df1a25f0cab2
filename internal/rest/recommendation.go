package rest

import (
	"context"
	"net/http"
	"personamart/domain"
	"personamart/pkg/logger"
	"personamart/pkg/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, userID uint, limit int) (domain.RecommendationResult, error)
	GetColdStartRecommendations(ctx context.Context, limit int) ([]domain.RecommendationItem, error)
}

type RecommendationHandler struct {
	recommendationService RecommendationService
	timeout               time.Duration
}

func NewRecommendationHandler(recommendationService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		timeout:               10 * time.Second,
	}
}

func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userIDStr := c.Param("user_id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	limit, err := strconv.Atoi(c.QueryParam("n"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	result, err := h.recommendationService.GetRecommendations(ctx, uint(userID), limit)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues(result.RecommendationType).Inc()

	return c.JSON(http.StatusOK, result)
}

func (h *RecommendationHandler) GetNewUserRecommendations(c echo.Context) error {
	limit, err := strconv.Atoi(c.QueryParam("n"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	items, err := h.recommendationService.GetColdStartRecommendations(ctx, limit)
	if err != nil {
		logger.Error("Failed to get cold start recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues(domain.RecoTypeNewUser).Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations":     items,
		"recommendation_type": domain.RecoTypeNewUser,
	})
}
