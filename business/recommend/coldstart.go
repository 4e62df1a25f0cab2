package recommend

import (
	"context"

	"personamart/domain"
	"personamart/pkg/logger"
)

// personaRecommendations serves users with no purchase history from their
// declared persona and income level alone. The persona shapes a price or
// category filter; the income level then caps the price band. If the filter
// matches nothing, fallbackRecommendations takes over.
func (s *RecommendationService) personaRecommendations(ctx context.Context, user domain.User, limit int) []domain.RecommendationItem {
	filter := ProductFilter{Limit: limit}

	profile := s.catalog.Get(user.PersonaType)

	switch user.PersonaType {
	case "budget_conscious":
		ceiling := s.cfg.BudgetPriceCeiling
		filter.MaxPrice = &ceiling
	case "luxury_lover":
		floor := s.cfg.LuxuryPriceFloor
		filter.MinPrice = &floor
	case "tech_enthusiast":
		filter.Categories = []string{"Electronics"}
	case "fashion_forward":
		filter.Categories = []string{"Fashion"}
	default:
		// Unmapped personas fall back to their catalog price band.
		lo, hi := profile.PriceRange.Min, profile.PriceRange.Max
		filter.MinPrice = &lo
		filter.MaxPrice = &hi
	}

	// Income level overrides the persona price band.
	switch user.IncomeLevel {
	case domain.IncomeLow:
		ceiling := s.cfg.LowIncomePriceCap
		filter.MinPrice = nil
		filter.MaxPrice = &ceiling
	case domain.IncomeHigh:
		floor := s.cfg.HighIncomePriceFloor
		filter.MinPrice = &floor
		filter.MaxPrice = nil
	}

	products, err := s.productRepo.FindFiltered(ctx, filter)
	if err != nil {
		logger.Warn("persona product scan failed", "user_id", user.ID, "error", err)
		products = nil
	}

	if len(products) == 0 {
		return s.fallbackRecommendations(ctx, limit)
	}

	return itemsFromProducts(products, 1.0, domain.RecoSourcePersona)
}

// fallbackRecommendations is the terminal fallback: an unranked sample of
// whatever the store has. It never fails; an empty store yields an empty list.
func (s *RecommendationService) fallbackRecommendations(ctx context.Context, limit int) []domain.RecommendationItem {
	products, err := s.productRepo.FindAny(ctx, limit)
	if err != nil {
		logger.Warn("fallback product scan failed", "error", err)
		return []domain.RecommendationItem{}
	}

	return itemsFromProducts(products, 0.5, domain.RecoSourceFallback)
}
