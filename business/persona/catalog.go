package persona

import "personamart/domain"

// DefaultPersona is substituted for any unknown persona tag.
const DefaultPersona = "practical_buyer"

// Catalog is the static persona table. It is built once at startup and
// treated as read-only afterwards, so it is safe to share across requests.
type Catalog struct {
	profiles map[string]domain.PersonaProfile
}

// Get returns the profile for the given persona tag, falling back to
// practical_buyer when the tag is unknown or empty.
func (c *Catalog) Get(personaType string) domain.PersonaProfile {
	if p, ok := c.profiles[personaType]; ok {
		return p
	}
	return c.profiles[DefaultPersona]
}

// Types returns every known persona tag.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.profiles))
	for t := range c.profiles {
		types = append(types, t)
	}
	return types
}

func NewCatalog() *Catalog {
	profiles := map[string]domain.PersonaProfile{
		"budget_conscious": {
			PriceRange:          domain.PriceRange{Min: 10, Max: 100},
			PreferredCategories: []string{"Home & Garden", "Books", "Toys"},
			ShoppingBehavior:    domain.BehaviorResearcher,
			DiscountSensitivity: domain.SensitivityHigh,
			BrandPreference:     "value_brands",
		},
		"luxury_lover": {
			PriceRange:          domain.PriceRange{Min: 200, Max: 2000},
			PreferredCategories: []string{"Fashion", "Electronics", "Beauty"},
			ShoppingBehavior:    domain.BehaviorImpulseBuyer,
			DiscountSensitivity: domain.SensitivityLow,
			BrandPreference:     "premium_brands",
		},
		"tech_enthusiast": {
			PriceRange:          domain.PriceRange{Min: 50, Max: 1500},
			PreferredCategories: []string{"Electronics", "Gaming", "Smart Home"},
			ShoppingBehavior:    domain.BehaviorEarlyAdopter,
			DiscountSensitivity: domain.SensitivityMedium,
			BrandPreference:     "tech_brands",
		},
		"fashion_forward": {
			PriceRange:          domain.PriceRange{Min: 30, Max: 500},
			PreferredCategories: []string{"Fashion", "Beauty", "Accessories"},
			ShoppingBehavior:    domain.BehaviorTrendFollow,
			DiscountSensitivity: domain.SensitivityMedium,
			BrandPreference:     "trendy_brands",
		},
		"practical_buyer": {
			PriceRange:          domain.PriceRange{Min: 20, Max: 300},
			PreferredCategories: []string{"Home & Garden", "Automotive", "Sports"},
			ShoppingBehavior:    domain.BehaviorNeedsBased,
			DiscountSensitivity: domain.SensitivityMedium,
			BrandPreference:     "reliable_brands",
		},
		"impulse_shopper": {
			PriceRange:          domain.PriceRange{Min: 5, Max: 200},
			PreferredCategories: []string{"Toys", "Beauty", "Fashion"},
			ShoppingBehavior:    domain.BehaviorImpulseBuyer,
			DiscountSensitivity: domain.SensitivityHigh,
			BrandPreference:     "any_brand",
		},
		"research_heavy": {
			PriceRange:          domain.PriceRange{Min: 50, Max: 800},
			PreferredCategories: []string{"Electronics", "Home & Garden", "Automotive"},
			ShoppingBehavior:    domain.BehaviorResearcher,
			DiscountSensitivity: domain.SensitivityLow,
			BrandPreference:     "quality_brands",
		},
		"brand_loyal": {
			PriceRange:          domain.PriceRange{Min: 20, Max: 600},
			PreferredCategories: []string{"Fashion", "Beauty", "Electronics"},
			ShoppingBehavior:    domain.BehaviorBrandFocused,
			DiscountSensitivity: domain.SensitivityLow,
			BrandPreference:     "specific_brands",
		},
		"trend_follower": {
			PriceRange:          domain.PriceRange{Min: 15, Max: 400},
			PreferredCategories: []string{"Fashion", "Beauty", "Toys"},
			ShoppingBehavior:    domain.BehaviorTrendFollow,
			DiscountSensitivity: domain.SensitivityHigh,
			BrandPreference:     "trendy_brands",
		},
	}

	for t, p := range profiles {
		p.Type = t
		profiles[t] = p
	}

	return &Catalog{profiles: profiles}
}
