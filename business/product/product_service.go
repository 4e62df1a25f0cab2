package product

import (
	"context"
	"errors"

	"personamart/domain"
	"personamart/pkg/logger"
)

// ListFilter narrows a catalog listing.
type ListFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindListed(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type ProductService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, errors.New("product name is required")
	}
	if product.Category == "" {
		return nil, errors.New("product category is required")
	}
	if product.Price <= 0 {
		return nil, errors.New("price must be greater than 0")
	}
	if product.Rating < 0 || product.Rating > 5 {
		return nil, errors.New("rating must be between 0 and 5")
	}
	if product.DiscountPercentage < 0 || product.DiscountPercentage > 100 {
		return nil, errors.New("discount percentage must be between 0 and 100")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("Failed to create product", err)
		return nil, err
	}

	return product, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) GetProducts(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	return s.productRepo.FindListed(ctx, filter)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		return nil, errors.New("product ID is required")
	}
	if product.Name == "" {
		return nil, errors.New("product name is required")
	}
	if product.Price <= 0 {
		return nil, errors.New("price must be greater than 0")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid product id")
	}
	return s.productRepo.Delete(ctx, id)
}
