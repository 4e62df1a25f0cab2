package seed

import (
	"context"
	"fmt"
	"math/rand"

	"personamart/domain"
	"personamart/pkg/logger"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
}

type PurchaseRepository interface {
	CreateCompleted(ctx context.Context, purchase *domain.Purchase) error
}

// Counts controls how many records a seeding run inserts.
type Counts struct {
	Users    int `json:"users"`
	Products int `json:"products"`
}

// Result reports what a seeding run actually inserted.
type Result struct {
	Users     int `json:"users"`
	Products  int `json:"products"`
	Purchases int `json:"purchases"`
}

type Service struct {
	userRepo     UserRepository
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	gen          *Generator
}

func NewService(userRepo UserRepository, productRepo ProductRepository, purchaseRepo PurchaseRepository, rng *rand.Rand) *Service {
	return &Service{
		userRepo:     userRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		gen:          NewGenerator(rng),
	}
}

// Seed inserts synthetic users and products, then gives each user up to
// ten completed purchases drawn from the seeded catalog.
func (s *Service) Seed(ctx context.Context, counts Counts) (*Result, error) {
	if counts.Users <= 0 {
		counts.Users = 50
	}
	if counts.Products <= 0 {
		counts.Products = 100
	}

	products := make([]domain.Product, 0, counts.Products)
	for i := 0; i < counts.Products; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		product := s.gen.Product()
		if err := s.productRepo.Create(ctx, &product); err != nil {
			return nil, fmt.Errorf("seed product: %w", err)
		}
		products = append(products, product)
	}

	result := &Result{Products: len(products)}

	for i := 0; i < counts.Users; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		user := s.gen.User()
		if err := s.userRepo.Create(ctx, &user); err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
		result.Users++

		numPurchases := s.gen.rng.Intn(11)
		for j := 0; j < numPurchases; j++ {
			purchase := s.gen.Purchase(user.ID, products)
			if err := s.purchaseRepo.CreateCompleted(ctx, &purchase); err != nil {
				logger.Warn("seed purchase failed", "user_id", user.ID, "error", err)
				continue
			}
			result.Purchases++
		}
	}

	logger.Info("seeding complete", "users", result.Users, "products", result.Products, "purchases", result.Purchases)
	return result, nil
}
