package rest

import (
	"context"
	"net/http"
	"personamart/business/seed"
	"personamart/pkg/logger"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type SeedService interface {
	Seed(ctx context.Context, counts seed.Counts) (*seed.Result, error)
}

type SeedHandler struct {
	seedService SeedService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewSeedHandler(seedService SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		validator:   validator.New(),
		// seeding inserts thousands of rows, give it more room than
		// the regular handlers
		timeout: 2 * time.Minute,
	}
}

type SeedRequest struct {
	Users    int `json:"users" validate:"gte=0,lte=10000"`
	Products int `json:"products" validate:"gte=0,lte=10000"`
}

func (h *SeedHandler) Seed(c echo.Context) error {
	var req SeedRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate seed request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.seedService.Seed(ctx, seed.Counts{
		Users:    req.Users,
		Products: req.Products,
	})
	if err != nil {
		logger.Error("Failed to seed database", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "database successfully seeded",
		"seeded":  result,
	})
}
