package recommend

import (
	"context"
	"time"

	"personamart/domain"
	"personamart/pkg/logger"
)

// trendingRecommendations ranks products added within the trending window by
// sales, then rating. Score is the raw units-sold count.
func (s *RecommendationService) trendingRecommendations(ctx context.Context, limit int) []domain.RecommendationItem {
	if limit <= 0 {
		return nil
	}

	since := time.Now().UTC().AddDate(0, 0, -s.cfg.TrendingWindowDays)

	products, err := s.productRepo.FindCreatedSince(ctx, since, limit)
	if err != nil {
		logger.Warn("trending product scan failed", "error", err)
		return nil
	}

	items := make([]domain.RecommendationItem, 0, len(products))
	for i := range products {
		p := products[i]
		items = append(items, domain.RecommendationItem{
			ProductID: p.ID,
			Product:   &p,
			Score:     float64(p.TotalSold),
			Source:    domain.RecoSourceTrending,
		})
	}

	return items
}
