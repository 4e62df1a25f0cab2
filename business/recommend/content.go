package recommend

import (
	"context"
	"sort"
	"strings"

	"personamart/domain"
	"personamart/pkg/logger"
)

// contentRecommendations scores products against the user's declared
// preferences. Candidates come from the user's favorite categories; an empty
// favorites list leaves the candidate scan unrestricted so the scorer never
// starves on missing preference data.
func (s *RecommendationService) contentRecommendations(ctx context.Context, user domain.User, limit int) []domain.RecommendationItem {
	filter := ProductFilter{Limit: s.cfg.ContentCandidateCap}
	if len(user.FavoriteCategories) > 0 {
		filter.Categories = user.FavoriteCategories
	}

	products, err := s.productRepo.FindFiltered(ctx, filter)
	if err != nil {
		logger.Warn("content candidate scan failed", "user_id", user.ID, "error", err)
		return nil
	}
	if len(products) == 0 {
		return nil
	}

	items := make([]domain.RecommendationItem, 0, len(products))
	for i := range products {
		p := products[i]
		items = append(items, domain.RecommendationItem{
			ProductID: p.ID,
			Product:   &p,
			Score:     s.contentScore(user, p),
			Source:    domain.RecoSourceContent,
		})
	}

	// Sort is stable so ties keep store iteration order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// contentScore is a pure function of the user's preferences and one product.
func (s *RecommendationService) contentScore(user domain.User, product domain.Product) float64 {
	score := 0.0

	for _, cat := range user.FavoriteCategories {
		if product.Category == cat {
			score += s.cfg.CategoryMatchScore
			break
		}
	}

	for _, interest := range user.Interests {
		for _, tag := range product.Tags {
			if strings.EqualFold(interest, tag) {
				score += s.cfg.TagMatchScore
				break
			}
		}
	}

	switch user.PersonaType {
	case "budget_conscious":
		if product.Price < s.cfg.BudgetPriceCeiling {
			score += s.cfg.PersonaBonusScore
		}
	case "luxury_lover":
		if product.Price > s.cfg.LuxuryPriceFloor {
			score += s.cfg.PersonaBonusScore
		}
	case "tech_enthusiast":
		if product.Category == "Electronics" {
			score += s.cfg.TechCategoryBonus
		}
	}

	score += product.Rating * s.cfg.RatingBoostFactor

	return score
}
