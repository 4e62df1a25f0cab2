package simulation

import "personamart/domain"

// analyzeBehavior derives summary metrics from one simulated session. Pure
// aggregation: no store access, no randomness.
func analyzeBehavior(events []domain.SessionEvent, profile domain.PersonaProfile) domain.BehaviorInsights {
	totalEvents := len(events)

	purchases := 0
	views := 0
	totalDwell := 0
	for _, e := range events {
		switch e.EventType {
		case domain.EventPurchase:
			purchases++
		case domain.EventViewProduct:
			views++
			if secs, ok := e.Details["time_spent_seconds"].(int); ok {
				totalDwell += secs
			}
		}
	}

	// Floors of 1 guard the empty-session divides.
	eventDivisor := totalEvents
	if eventDivisor < 1 {
		eventDivisor = 1
	}
	viewDivisor := views
	if viewDivisor < 1 {
		viewDivisor = 1
	}

	return domain.BehaviorInsights{
		ShoppingStyle:       profile.ShoppingBehavior,
		PriceSensitivity:    profile.DiscountSensitivity,
		CategoryPreference:  profile.PreferredCategories,
		ConversionRate:      float64(purchases) / float64(eventDivisor),
		AvgTimePerProduct:   float64(totalDwell) / float64(viewDivisor),
		TotalProductsViewed: views,
		TotalPurchases:      purchases,
	}
}
