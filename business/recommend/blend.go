package recommend

import (
	"sort"

	"personamart/domain"
)

// blend merges the scorer outputs into one ranked list. Each product's
// combined score is the sum of scorerScore x scorerWeight over every scorer
// that proposed it; a product proposed by only one scorer gets just that one
// term. Scores are summed on their native scales (linear opinion pool), so
// cross-scorer agreement pushes a product up the ranking.
func (s *RecommendationService) blend(collaborative, content, trending []domain.RecommendationItem) []domain.RecommendationItem {
	type pooled struct {
		product *domain.Product
		score   float64
		source  string
	}

	pool := make(map[uint64]*pooled)
	order := make([]uint64, 0, len(collaborative)+len(content)+len(trending))

	add := func(items []domain.RecommendationItem, weight float64) {
		for _, item := range items {
			entry, ok := pool[item.ProductID]
			if !ok {
				entry = &pooled{product: item.Product, source: item.Source}
				pool[item.ProductID] = entry
				order = append(order, item.ProductID)
			}
			entry.score += item.Score * weight
			if entry.product == nil {
				entry.product = item.Product
			}
		}
	}

	add(collaborative, s.cfg.WCollaborative)
	add(content, s.cfg.WContent)
	add(trending, s.cfg.WTrending)

	combined := make([]domain.RecommendationItem, 0, len(order))
	for _, id := range order {
		entry := pool[id]
		combined = append(combined, domain.RecommendationItem{
			ProductID: id,
			Product:   entry.product,
			Score:     entry.score,
			Source:    entry.source,
		})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Score > combined[j].Score
	})

	return combined
}
