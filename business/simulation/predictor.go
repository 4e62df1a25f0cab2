package simulation

import (
	"context"

	"personamart/business/recommend"
	"personamart/domain"
	"personamart/pkg/logger"
)

const (
	candidateCap = 20
	acceptedCap  = 10

	baseProbability = 0.5
	priceRangeBonus = 0.2
	categoryBonus   = 0.2
	ratingBonus     = 0.1
	discountBonus   = 0.2
	ratingThreshold = 4.0
)

// potentialPurchases estimates, per candidate product, the probability the
// persona would buy it and keeps candidates that pass an independent random
// draw. Store failures degrade to an empty list.
func (s *SimulationService) potentialPurchases(ctx context.Context, profile domain.PersonaProfile) []domain.PotentialPurchase {
	lo, hi := profile.PriceRange.Min, profile.PriceRange.Max
	products, err := s.productRepo.FindFiltered(ctx, recommend.ProductFilter{
		Categories: profile.PreferredCategories,
		MinPrice:   &lo,
		MaxPrice:   &hi,
		Limit:      candidateCap,
	})
	if err != nil {
		logger.Warn("potential purchase candidate scan failed", "persona", profile.Type, "error", err)
		return []domain.PotentialPurchase{}
	}

	accepted := make([]domain.PotentialPurchase, 0, acceptedCap)
	for _, product := range products {
		probability := purchaseProbability(product, profile)

		if s.rng.Float64() >= probability {
			continue
		}

		accepted = append(accepted, domain.PotentialPurchase{
			ProductID:           product.ID,
			ProductName:         product.Name,
			Price:               product.Price,
			PurchaseProbability: probability,
			Reason:              s.purchaseReason(profile),
		})
		if len(accepted) == acceptedCap {
			break
		}
	}

	return accepted
}

// purchaseProbability applies fixed empirical bonuses on top of a 0.5 base.
// The raw sum can exceed 1.0 when every bonus applies; it is clamped.
func purchaseProbability(product domain.Product, profile domain.PersonaProfile) float64 {
	probability := baseProbability

	if profile.PriceRange.Contains(product.Price) {
		probability += priceRangeBonus
	}

	for _, cat := range profile.PreferredCategories {
		if product.Category == cat {
			probability += categoryBonus
			break
		}
	}

	if product.Rating >= ratingThreshold {
		probability += ratingBonus
	}

	if profile.DiscountSensitivity == domain.SensitivityHigh && product.DiscountPercentage > 0 {
		probability += discountBonus
	}

	if probability > 1.0 {
		probability = 1.0
	}
	return probability
}

func (s *SimulationService) purchaseReason(profile domain.PersonaProfile) string {
	reasons, ok := purchaseReasons[profile.Type]
	if !ok {
		reasons = defaultReasons
	}
	return reasons[s.rng.Intn(len(reasons))]
}
