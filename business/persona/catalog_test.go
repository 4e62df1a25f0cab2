package persona

import (
	"testing"

	"personamart/domain"
)

func TestGetKnownPersona(t *testing.T) {
	catalog := NewCatalog()

	profile := catalog.Get("budget_conscious")
	if profile.Type != "budget_conscious" {
		t.Errorf("expected type budget_conscious, got %s", profile.Type)
	}
	if profile.PriceRange.Min != 10 || profile.PriceRange.Max != 100 {
		t.Errorf("unexpected price range: %+v", profile.PriceRange)
	}
	if profile.DiscountSensitivity != domain.SensitivityHigh {
		t.Errorf("unexpected discount sensitivity: %s", profile.DiscountSensitivity)
	}
}

func TestGetUnknownPersonaFallsBack(t *testing.T) {
	catalog := NewCatalog()

	for _, tag := range []string{"", "no_such_persona"} {
		profile := catalog.Get(tag)
		if profile.Type != DefaultPersona {
			t.Errorf("Get(%q) = %s, want %s", tag, profile.Type, DefaultPersona)
		}
		if profile.ShoppingBehavior != domain.BehaviorNeedsBased {
			t.Errorf("unexpected behavior for default persona: %s", profile.ShoppingBehavior)
		}
	}
}

func TestTypesCoversAllPersonas(t *testing.T) {
	catalog := NewCatalog()

	types := catalog.Types()
	if len(types) != 9 {
		t.Fatalf("expected 9 personas, got %d", len(types))
	}

	seen := make(map[string]bool, len(types))
	for _, tag := range types {
		seen[tag] = true
	}
	for _, want := range []string{"budget_conscious", "luxury_lover", "tech_enthusiast", "practical_buyer", "trend_follower"} {
		if !seen[want] {
			t.Errorf("missing persona %s", want)
		}
	}
}
