package purchase

import (
	"context"
	"errors"
	"fmt"

	"personamart/business/product"
	"personamart/domain"
	"personamart/pkg/logger"
)

// PurchaseRepository contract interface. CreateCompleted must atomically
// insert the purchase with its items and increment the user and product
// aggregates; the purchase log is append-only.
type PurchaseRepository interface {
	CreateCompleted(ctx context.Context, purchase *domain.Purchase) error
	FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Purchase, error)
}

type PurchaseService struct {
	purchaseRepo PurchaseRepository
	productRepo  product.ProductRepository
}

func NewPurchaseService(purchaseRepo PurchaseRepository, productRepo product.ProductRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
	}
}

// CartItem is one requested line of a new purchase.
type CartItem struct {
	ProductID uint64
	Quantity  int
}

// CreatePurchase prices the cart from current product data, applies per-line
// discounts, and records the completed purchase.
func (s *PurchaseService) CreatePurchase(ctx context.Context, userID uint, cart []CartItem, paymentMethod, shippingAddress, sessionID string) (domain.Purchase, error) {
	if len(cart) == 0 {
		return domain.Purchase{}, errors.New("purchase requires at least one item")
	}

	items := make([]domain.PurchaseItem, 0, len(cart))
	totalAmount := 0.0
	discountAmount := 0.0

	for _, line := range cart {
		if line.Quantity <= 0 {
			return domain.Purchase{}, errors.New("item quantity must be positive")
		}

		p, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return domain.Purchase{}, err
		}

		lineTotal := p.Price * float64(line.Quantity)
		lineDiscount := p.Price * p.DiscountPercentage / 100 * float64(line.Quantity)

		items = append(items, domain.PurchaseItem{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        line.Quantity,
			UnitPrice:       p.Price,
			TotalPrice:      lineTotal - lineDiscount,
			DiscountApplied: lineDiscount,
		})

		totalAmount += lineTotal
		discountAmount += lineDiscount
	}

	purchase := domain.Purchase{
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		DiscountAmount:  discountAmount,
		FinalAmount:     totalAmount - discountAmount,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		Status:          domain.PurchaseStatusCompleted,
		SessionID:       sessionID,
	}

	if err := s.purchaseRepo.CreateCompleted(ctx, &purchase); err != nil {
		logger.Error("Failed to record purchase", err)
		return domain.Purchase{}, fmt.Errorf("record purchase: %w", err)
	}

	return purchase, nil
}

func (s *PurchaseService) GetUserPurchases(ctx context.Context, userID uint, limit int) ([]domain.Purchase, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.purchaseRepo.FindByUser(ctx, userID, limit)
}
