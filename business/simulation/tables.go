package simulation

import "personamart/domain"

// Static lookup data for the simulator. Built once, never mutated.

// Event count multiplier per shopping behavior, applied to one event per
// five minutes of session time.
var eventMultipliers = map[string]float64{
	domain.BehaviorImpulseBuyer: 1.5,
	domain.BehaviorResearcher:   0.7,
	domain.BehaviorTrendFollow:  1.2,
}

type eventWeight struct {
	eventType string
	weight    float64
}

// Behavior-specific categorical distributions over event types. Each event's
// type is drawn independently.
var eventDistributions = map[string][]eventWeight{
	domain.BehaviorImpulseBuyer: {
		{domain.EventBrowse, 0.2},
		{domain.EventViewProduct, 0.3},
		{domain.EventAddToCart, 0.3},
		{domain.EventPurchase, 0.2},
	},
	domain.BehaviorResearcher: {
		{domain.EventSearch, 0.3},
		{domain.EventViewProduct, 0.2},
		{domain.EventReadReviews, 0.2},
		{domain.EventCompareProducts, 0.2},
		{domain.EventAddToCart, 0.1},
	},
	domain.BehaviorTrendFollow: {
		{domain.EventBrowse, 0.3},
		{domain.EventViewProduct, 0.3},
		{domain.EventCheckTrends, 0.2},
		{domain.EventAddToCart, 0.2},
	},
}

var defaultDistribution = []eventWeight{
	{domain.EventBrowse, 0.4},
	{domain.EventViewProduct, 0.4},
	{domain.EventAddToCart, 0.2},
}

// Search query terms per category.
var queryTerms = map[string][]string{
	"Electronics":   {"wireless headphones", "smartphone", "laptop", "tablet", "gaming console"},
	"Fashion":       {"dress", "shoes", "jeans", "jacket", "accessories"},
	"Home & Garden": {"furniture", "kitchen appliances", "garden tools", "decor"},
	"Beauty":        {"skincare", "makeup", "perfume", "hair products"},
	"Sports":        {"fitness equipment", "running shoes", "sports clothing", "outdoor gear"},
}

var defaultQueryTerms = []string{"product"}

var paymentMethods = []string{"credit_card", "paypal", "debit_card"}

// Purchase reasons per persona type.
var purchaseReasons = map[string][]string{
	"budget_conscious": {"Good value for money", "On sale", "Essential item"},
	"luxury_lover":     {"Premium quality", "Brand reputation", "Exclusive item"},
	"tech_enthusiast":  {"Latest technology", "Innovative features", "High performance"},
	"fashion_forward":  {"Trendy design", "Popular item", "Stylish appearance"},
	"practical_buyer":  {"Durable", "Good reviews", "Practical use"},
}

var defaultReasons = []string{"Good product"}
