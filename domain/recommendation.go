package domain

import "time"

// Sources a recommendation can come from. Scores are heterogeneous across
// sources (raw co-purchase counts, content points, sales counts) and are
// reconciled only at blend time.
const (
	RecoSourceCollaborative = "collaborative"
	RecoSourceContent       = "content"
	RecoSourceTrending      = "trending"
	RecoSourcePersona       = "persona"
	RecoSourceFallback      = "fallback"
)

const (
	RecoTypePersonalized = "personalized"
	RecoTypePersonaBased = "persona_based"
	RecoTypeNewUser      = "new_user"
)

type RecommendationItem struct {
	ProductID uint64   `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Score     float64  `json:"score"`
	Source    string   `json:"source,omitempty"`
}

const (
	OfferTypeDiscount     = "discount"
	OfferTypeFreeShipping = "free_shipping"
)

type Offer struct {
	ProductID          uint64  `json:"product_id"`
	ProductName        string  `json:"product_name"`
	OfferType          string  `json:"offer_type"`
	OriginalPrice      float64 `json:"original_price,omitempty"`
	DiscountedPrice    float64 `json:"discounted_price,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	Description        string  `json:"description,omitempty"`
}

type RecommendationResult struct {
	UserID             uint                 `json:"user_id"`
	Recommendations    []RecommendationItem `json:"recommendations"`
	Offers             []Offer              `json:"offers"`
	RecommendationType string               `json:"recommendation_type"`
	GeneratedAt        time.Time            `json:"generated_at"`
}
