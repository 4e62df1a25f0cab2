package simulation

import (
	"time"

	"personamart/domain"
)

// generateEvents emits floor(duration/5) x behavior-multiplier events, evenly
// spaced across the session. Event types are drawn independently from the
// behavior's categorical distribution.
func (s *SimulationService) generateEvents(profile domain.PersonaProfile, durationMinutes int) []domain.SessionEvent {
	numEvents := eventCount(profile.ShoppingBehavior, durationMinutes)
	if numEvents <= 0 {
		return []domain.SessionEvent{}
	}

	start := time.Now().UTC()
	spacing := time.Duration(float64(durationMinutes) / float64(numEvents) * float64(time.Minute))

	events := make([]domain.SessionEvent, 0, numEvents)
	for i := 0; i < numEvents; i++ {
		eventType := s.drawEventType(profile.ShoppingBehavior)
		events = append(events, domain.SessionEvent{
			Timestamp: start.Add(time.Duration(i) * spacing),
			EventType: eventType,
			Details:   s.eventDetails(eventType, profile),
		})
	}

	return events
}

func eventCount(behavior string, durationMinutes int) int {
	base := durationMinutes / 5 // one event every five minutes
	if mult, ok := eventMultipliers[behavior]; ok {
		return int(float64(base) * mult)
	}
	return base
}

func (s *SimulationService) drawEventType(behavior string) string {
	dist, ok := eventDistributions[behavior]
	if !ok {
		dist = defaultDistribution
	}

	total := 0.0
	for _, ew := range dist {
		total += ew.weight
	}

	draw := s.rng.Float64() * total
	for _, ew := range dist {
		draw -= ew.weight
		if draw < 0 {
			return ew.eventType
		}
	}
	return dist[len(dist)-1].eventType
}

func (s *SimulationService) eventDetails(eventType string, profile domain.PersonaProfile) map[string]any {
	switch eventType {
	case domain.EventSearch:
		return map[string]any{
			"query":           s.searchQuery(profile),
			"filters_applied": s.searchFilters(profile),
		}
	case domain.EventViewProduct:
		return map[string]any{
			"product_category":    s.pick(profile.PreferredCategories),
			"time_spent_seconds":  30 + s.rng.Intn(271),
			"scrolled_to_reviews": s.rng.Float64() < 0.7,
		}
	case domain.EventAddToCart:
		return map[string]any{
			"quantity":    1 + s.rng.Intn(3),
			"price_range": profile.PriceRange,
		}
	case domain.EventPurchase:
		span := profile.PriceRange.Max - profile.PriceRange.Min
		return map[string]any{
			"payment_method": paymentMethods[s.rng.Intn(len(paymentMethods))],
			"total_amount":   profile.PriceRange.Min + s.rng.Float64()*span,
		}
	default:
		return map[string]any{
			"duration_seconds": 10 + s.rng.Intn(111),
		}
	}
}

func (s *SimulationService) searchQuery(profile domain.PersonaProfile) string {
	category := s.pick(profile.PreferredCategories)
	terms, ok := queryTerms[category]
	if !ok {
		terms = defaultQueryTerms
	}
	return terms[s.rng.Intn(len(terms))]
}

func (s *SimulationService) searchFilters(profile domain.PersonaProfile) map[string]any {
	filters := map[string]any{
		"price_min": profile.PriceRange.Min,
		"price_max": profile.PriceRange.Max,
	}

	if s.rng.Float64() < 0.7 {
		filters["category"] = s.pick(profile.PreferredCategories)
	}

	if profile.ShoppingBehavior == domain.BehaviorResearcher {
		filters["min_rating"] = 3 + s.rng.Intn(3)
	}

	return filters
}

func (s *SimulationService) pick(options []string) string {
	if len(options) == 0 {
		return "Electronics"
	}
	return options[s.rng.Intn(len(options))]
}
