package rest

import (
	"context"
	"net/http"
	"personamart/business/purchase"
	"personamart/domain"
	"personamart/pkg/logger"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PurchaseService interface {
	CreatePurchase(ctx context.Context, userID uint, cart []purchase.CartItem, paymentMethod, shippingAddress, sessionID string) (domain.Purchase, error)
	GetUserPurchases(ctx context.Context, userID uint, limit int) ([]domain.Purchase, error)
}

type PurchaseHandler struct {
	purchaseService PurchaseService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewPurchaseHandler(purchaseService PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type PurchaseItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreatePurchaseRequest struct {
	UserID          uint                  `json:"user_id" validate:"required"`
	Items           []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string                `json:"payment_method" validate:"required"`
	ShippingAddress string                `json:"shipping_address,omitempty"`
	SessionID       string                `json:"session_id,omitempty"`
}

func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	var req CreatePurchaseRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate purchase request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	cart := make([]purchase.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, purchase.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.purchaseService.CreatePurchase(ctx, req.UserID, cart, req.PaymentMethod, req.ShippingAddress, req.SessionID)
	if err != nil {
		logger.Error("Failed to create purchase", err)
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "purchase requires at least one item" ||
			err.Error() == "item quantity must be positive" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *PurchaseHandler) GetUserPurchases(c echo.Context) error {
	userIDStr := c.Param("user_id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	purchases, err := h.purchaseService.GetUserPurchases(ctx, uint(userID), limit)
	if err != nil {
		logger.Error("Failed to find purchases", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(purchases))
}
