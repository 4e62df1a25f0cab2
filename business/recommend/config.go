package recommend

// Config carries the blend weights and candidate bounds. Weights are an
// additive linear opinion pool over heterogeneous score scales: collaborative
// scores are raw co-purchase counts, content scores are preference points,
// trending scores are sales counts. They are summed as-is, so a product
// proposed by several scorers is systematically favored. Normalizing them
// would change ranked output and is deliberately not done.
type Config struct {
	WCollaborative float64
	WContent       float64
	WTrending      float64

	// Collaborative neighbor search bounds.
	MinCommonProducts int
	NeighborPool      int

	// Content scoring constants.
	CategoryMatchScore  float64
	TagMatchScore       float64
	PersonaBonusScore   float64
	TechCategoryBonus   float64
	RatingBoostFactor   float64
	BudgetPriceCeiling  float64
	LuxuryPriceFloor    float64
	ContentCandidateCap int

	// Trending window in days.
	TrendingWindowDays int

	// Cold-start income caps.
	LowIncomePriceCap    float64
	HighIncomePriceFloor float64

	// Probability of a free-shipping offer on an undiscounted product.
	FreeShippingOdds float64
}

const (
	defaultWCollaborative    = 0.4
	defaultWContent          = 0.4
	defaultWTrending         = 0.2
	defaultMinCommonProducts = 2
	defaultNeighborPool      = 20
	defaultTrendingWindow    = 30
	defaultFreeShippingOdds  = 0.1
	defaultContentCap        = 100
)

func DefaultConfig() Config {
	return Config{
		WCollaborative: defaultWCollaborative,
		WContent:       defaultWContent,
		WTrending:      defaultWTrending,

		MinCommonProducts: defaultMinCommonProducts,
		NeighborPool:      defaultNeighborPool,

		CategoryMatchScore:  3.0,
		TagMatchScore:       2.0,
		PersonaBonusScore:   2.0,
		TechCategoryBonus:   3.0,
		RatingBoostFactor:   0.5,
		BudgetPriceCeiling:  100,
		LuxuryPriceFloor:    500,
		ContentCandidateCap: defaultContentCap,

		TrendingWindowDays: defaultTrendingWindow,

		LowIncomePriceCap:    50,
		HighIncomePriceFloor: 200,

		FreeShippingOdds: defaultFreeShippingOdds,
	}
}
