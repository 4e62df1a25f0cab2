package recommend

import (
	"math"

	"personamart/domain"
)

// offersForRecommendations attaches at most one promotional offer per
// recommended product: a discount offer when the product carries one, else a
// free-shipping offer with a fixed independent probability.
func (s *RecommendationService) offersForRecommendations(recs []domain.RecommendationItem) []domain.Offer {
	offers := make([]domain.Offer, 0, len(recs))

	for _, rec := range recs {
		if rec.Product == nil {
			continue
		}
		p := rec.Product

		if p.DiscountPercentage > 0 {
			offers = append(offers, domain.Offer{
				ProductID:          p.ID,
				ProductName:        p.Name,
				OfferType:          domain.OfferTypeDiscount,
				OriginalPrice:      p.Price,
				DiscountedPrice:    round2(p.Price * (1 - p.DiscountPercentage/100)),
				DiscountPercentage: p.DiscountPercentage,
			})
			continue
		}

		if s.rng.Float64() < s.cfg.FreeShippingOdds {
			offers = append(offers, domain.Offer{
				ProductID:   p.ID,
				ProductName: p.Name,
				OfferType:   domain.OfferTypeFreeShipping,
				Description: "Free shipping on this item!",
			})
		}
	}

	return offers
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
