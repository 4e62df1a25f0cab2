package domain

// Shopping behavior styles driving session simulation.
const (
	BehaviorImpulseBuyer = "impulse_buyer"
	BehaviorResearcher   = "researches_before_buying"
	BehaviorTrendFollow  = "trend_follower"
	BehaviorNeedsBased   = "needs_based"
	BehaviorBrandFocused = "brand_focused"
	BehaviorEarlyAdopter = "early_adopter"
)

const (
	SensitivityLow    = "low"
	SensitivityMedium = "medium"
	SensitivityHigh   = "high"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// PersonaProfile is a static catalog entry. The catalog is built once at
// startup and never mutated; profiles are passed by value into the scorers
// and the session simulator.
type PersonaProfile struct {
	Type                string     `json:"persona_type"`
	PriceRange          PriceRange `json:"price_range"`
	PreferredCategories []string   `json:"preferred_categories"`
	ShoppingBehavior    string     `json:"shopping_behavior"`
	DiscountSensitivity string     `json:"discount_sensitivity"`
	BrandPreference     string     `json:"brand_preference"`
}
