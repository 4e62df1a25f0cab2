package postgres

import (
	"context"
	"fmt"

	"personamart/business/recommend"
	"personamart/domain"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		DB: db,
	}
}

// CreateCompleted inserts the purchase with its items and rolls the
// buyer and product aggregates forward in one transaction.
func (r *PurchaseRepository) CreateCompleted(ctx context.Context, purchase *domain.Purchase) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}

		err := tx.Model(&domain.User{}).Where("id = ?", purchase.UserID).Updates(map[string]interface{}{
			"total_purchases": gorm.Expr("total_purchases + ?", 1),
			"total_spent":     gorm.Expr("total_spent + ?", purchase.FinalAmount),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to update user totals: %w", err)
		}

		for _, item := range purchase.Items {
			err := tx.Model(&domain.Product{}).Where("id = ?", item.ProductID).Updates(map[string]interface{}{
				"total_sold":        gorm.Expr("total_sold + ?", item.Quantity),
				"revenue_generated": gorm.Expr("revenue_generated + ?", item.TotalPrice),
			}).Error
			if err != nil {
				return fmt.Errorf("failed to update product totals: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *PurchaseRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Purchase, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var purchases []domain.Purchase
	query := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}

	return purchases, nil
}

// DistinctProductIDs lists every product the user has ever bought.
func (r *PurchaseRepository) DistinctProductIDs(ctx context.Context, userID uint) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	err := r.DB.WithContext(ctx).
		Table("purchase_items").
		Select("DISTINCT purchase_items.product_id").
		Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
		Where("purchases.user_id = ?", userID).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find purchased products: %w", err)
	}

	return ids, nil
}

// CoPurchaseNeighbors finds other users who bought at least minCommon of
// the given products, most overlapping first.
func (r *PurchaseRepository) CoPurchaseNeighbors(ctx context.Context, userID uint, productIDs []uint64, minCommon, limit int) ([]uint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(productIDs) == 0 {
		return []uint{}, nil
	}

	var neighbors []uint
	err := r.DB.WithContext(ctx).
		Table("purchase_items").
		Select("purchases.user_id").
		Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
		Where("purchase_items.product_id IN ?", productIDs).
		Where("purchases.user_id <> ?", userID).
		Group("purchases.user_id").
		Having("COUNT(DISTINCT purchase_items.product_id) >= ?", minCommon).
		Order("COUNT(DISTINCT purchase_items.product_id) desc").
		Limit(limit).
		Scan(&neighbors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find co-purchase neighbors: %w", err)
	}

	return neighbors, nil
}

// TopProductsForUsers counts purchase frequency across the given users,
// skipping products in exclude.
func (r *PurchaseRepository) TopProductsForUsers(ctx context.Context, userIDs []uint, exclude []uint64, limit int) ([]recommend.ProductCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(userIDs) == 0 {
		return []recommend.ProductCount{}, nil
	}

	query := r.DB.WithContext(ctx).
		Table("purchase_items").
		Select("purchase_items.product_id AS product_id, COUNT(*) AS count").
		Joins("JOIN purchases ON purchases.id = purchase_items.purchase_id").
		Where("purchases.user_id IN ?", userIDs)
	if len(exclude) > 0 {
		query = query.Where("purchase_items.product_id NOT IN ?", exclude)
	}

	var counts []recommend.ProductCount
	err := query.
		Group("purchase_items.product_id").
		Order("count desc").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank neighbor products: %w", err)
	}

	return counts, nil
}
