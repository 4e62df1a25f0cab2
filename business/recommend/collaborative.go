package recommend

import (
	"context"

	"personamart/domain"
	"personamart/pkg/logger"
)

// collaborativeRecommendations ranks products purchased by co-purchase
// neighbors (users sharing at least MinCommonProducts purchased products with
// the target) that the target user has not bought yet. Score is the raw
// co-purchase count. Any store failure degrades to an empty contribution.
func (s *RecommendationService) collaborativeRecommendations(ctx context.Context, userID uint, purchasedIDs []uint64, limit int) []domain.RecommendationItem {
	if len(purchasedIDs) == 0 {
		return nil
	}

	neighbors, err := s.purchaseRepo.CoPurchaseNeighbors(ctx, userID, purchasedIDs, s.cfg.MinCommonProducts, s.cfg.NeighborPool)
	if err != nil {
		logger.Warn("co-purchase neighbor search failed", "user_id", userID, "error", err)
		return nil
	}
	if len(neighbors) == 0 {
		return nil
	}

	counts, err := s.purchaseRepo.TopProductsForUsers(ctx, neighbors, purchasedIDs, limit)
	if err != nil {
		logger.Warn("neighbor purchase aggregation failed", "user_id", userID, "error", err)
		return nil
	}
	if len(counts) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		logger.Warn("collaborative product lookup failed", "user_id", userID, "error", err)
		return nil
	}

	byID := make(map[uint64]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]domain.RecommendationItem, 0, len(counts))
	for _, c := range counts {
		product, ok := byID[c.ProductID]
		if !ok {
			continue
		}
		items = append(items, domain.RecommendationItem{
			ProductID: c.ProductID,
			Product:   product,
			Score:     float64(c.Count),
			Source:    domain.RecoSourceCollaborative,
		})
	}

	return items
}
