package domain

import "time"

// Session event types emitted by the simulator.
const (
	EventBrowse          = "browse"
	EventSearch          = "search"
	EventViewProduct     = "view_product"
	EventReadReviews     = "read_reviews"
	EventCompareProducts = "compare_products"
	EventCheckTrends     = "check_trends"
	EventAddToCart       = "add_to_cart"
	EventPurchase        = "purchase"
)

// SessionEvent is ephemeral: produced and consumed within one simulation
// request, never persisted or replayed.
type SessionEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details"`
}

type PotentialPurchase struct {
	ProductID           uint64  `json:"product_id"`
	ProductName         string  `json:"product_name"`
	Price               float64 `json:"price"`
	PurchaseProbability float64 `json:"purchase_probability"`
	Reason              string  `json:"reason"`
}

// BehaviorInsights are derived metrics over one simulated session.
type BehaviorInsights struct {
	ShoppingStyle       string   `json:"shopping_style"`
	PriceSensitivity    string   `json:"price_sensitivity"`
	CategoryPreference  []string `json:"category_preference"`
	ConversionRate      float64  `json:"conversion_rate"`
	AvgTimePerProduct   float64  `json:"avg_time_per_product"`
	TotalProductsViewed int      `json:"total_products_viewed"`
	TotalPurchases      int      `json:"total_purchases"`
}

type ShoppingSession struct {
	UserID             uint                `json:"user_id"`
	SessionID          string              `json:"session_id"`
	DurationMinutes    int                 `json:"session_duration_minutes"`
	PersonaType        string              `json:"persona_type"`
	Events             []SessionEvent      `json:"session_events"`
	PotentialPurchases []PotentialPurchase `json:"potential_purchases"`
	Insights           BehaviorInsights    `json:"behavioral_insights"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// PersonaAnalysis summarizes real (not simulated) purchase behavior.
type PersonaAnalysis struct {
	UserID              uint           `json:"user_id"`
	PersonaType         string         `json:"persona_type"`
	TotalPurchases      int            `json:"total_purchases"`
	TotalSpent          float64        `json:"total_spent"`
	AvgPurchaseValue    float64        `json:"avg_purchase_value"`
	FavoriteCategories  []string       `json:"favorite_categories"`
	CategoryPreferences map[string]int `json:"category_preferences"`
	ShoppingFrequency   float64        `json:"shopping_frequency"`
	AnalysisDate        time.Time      `json:"analysis_date"`
}
