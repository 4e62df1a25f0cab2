package rest

import (
	"context"
	"net/http"
	"personamart/business/product"
	"personamart/domain"
	"personamart/pkg/logger"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (domain.Product, error)
	GetProducts(ctx context.Context, filter product.ListFilter) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateProductRequest struct {
	Name               string   `json:"name" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Subcategory        string   `json:"subcategory,omitempty"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	Description        string   `json:"description,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Rating             float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount        int      `json:"review_count" validate:"gte=0"`
	StockQuantity      int      `json:"stock_quantity" validate:"gte=0"`
	IsFeatured         bool     `json:"is_featured"`
	DiscountPercentage float64  `json:"discount_percentage" validate:"gte=0,lte=100"`
}

type UpdateProductRequest struct {
	Name               string   `json:"name" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Subcategory        string   `json:"subcategory,omitempty"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	Description        string   `json:"description,omitempty"`
	Brand              string   `json:"brand,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	Rating             float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount        int      `json:"review_count" validate:"gte=0"`
	StockQuantity      int      `json:"stock_quantity" validate:"gte=0"`
	IsFeatured         bool     `json:"is_featured"`
	DiscountPercentage float64  `json:"discount_percentage" validate:"gte=0,lte=100"`
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	var filter product.ListFilter

	filter.Category = c.QueryParam("category")
	if v := c.QueryParam("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	filter.Skip, _ = strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	filter.Limit = limit

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProducts(ctx, filter)
	if err != nil {
		logger.Error("Failed to find products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productIDStr := c.Param("id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	found, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": found,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct := &domain.Product{
		Name:               req.Name,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
		Price:              req.Price,
		Description:        req.Description,
		Brand:              req.Brand,
		Tags:               datatypes.JSONSlice[string](req.Tags),
		Rating:             req.Rating,
		ReviewCount:        req.ReviewCount,
		StockQuantity:      req.StockQuantity,
		IsFeatured:         req.IsFeatured,
		DiscountPercentage: req.DiscountPercentage,
	}

	created, err := h.productService.CreateProduct(ctx, newProduct)
	if err != nil {
		logger.Error("Failed to create product", err)
		if err.Error() == "product name is required" ||
			err.Error() == "product category is required" ||
			err.Error() == "price must be greater than 0" ||
			err.Error() == "rating must be between 0 and 5" ||
			err.Error() == "discount percentage must be between 0 and 100" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product successfully created",
		"product": created,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productIDStr := c.Param("id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated := &domain.Product{
		ID:                 productID,
		Name:               req.Name,
		Category:           req.Category,
		Subcategory:        req.Subcategory,
		Price:              req.Price,
		Description:        req.Description,
		Brand:              req.Brand,
		Tags:               datatypes.JSONSlice[string](req.Tags),
		Rating:             req.Rating,
		ReviewCount:        req.ReviewCount,
		StockQuantity:      req.StockQuantity,
		IsFeatured:         req.IsFeatured,
		DiscountPercentage: req.DiscountPercentage,
	}

	result, err := h.productService.UpdateProduct(ctx, updated)
	if err != nil {
		logger.Error("Failed to update product", err)
		if err.Error() == "product not found" || err.Error() == "product not found or already deleted" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "product ID is required" ||
			err.Error() == "product name is required" ||
			err.Error() == "price must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": result,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productIDStr := c.Param("id")

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid product id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.productService.DeleteProduct(ctx, productID)
	if err != nil {
		logger.Error("Failed to delete product", err)
		if err.Error() == "product not found" ||
			err.Error() == "product not found or already deleted" ||
			err.Error() == "invalid product id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productID,
	})
}
