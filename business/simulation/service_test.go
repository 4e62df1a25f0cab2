package simulation

import (
	"context"
	"errors"
	"testing"
	"time"

	"personamart/business/recommend"
	"personamart/domain"
)

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return u, nil
}

type fakeProductRepo struct {
	filtered    []domain.Product
	filteredErr error
}

func (f *fakeProductRepo) FindFiltered(_ context.Context, _ recommend.ProductFilter) ([]domain.Product, error) {
	if f.filteredErr != nil {
		return nil, f.filteredErr
	}
	return f.filtered, nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []uint64) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	for _, p := range f.filtered {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases []domain.Purchase
}

func (f *fakePurchaseRepo) FindByUser(_ context.Context, _ uint, _ int) ([]domain.Purchase, error) {
	return f.purchases, nil
}

type fakeCatalog struct {
	profile domain.PersonaProfile
}

func (f *fakeCatalog) Get(_ string) domain.PersonaProfile { return f.profile }

// stubRand returns fixed values so event draws are deterministic.
type stubRand struct {
	intVal   int
	floatVal float64
}

func (s stubRand) Intn(n int) int {
	if s.intVal >= n {
		return n - 1
	}
	return s.intVal
}

func (s stubRand) Float64() float64 { return s.floatVal }

func profileWithBehavior(behavior string) domain.PersonaProfile {
	return domain.PersonaProfile{
		Type:                "practical_buyer",
		PriceRange:          domain.PriceRange{Min: 20, Max: 300},
		PreferredCategories: []string{"Home & Garden"},
		ShoppingBehavior:    behavior,
		DiscountSensitivity: domain.SensitivityMedium,
	}
}

func TestEventCountByBehavior(t *testing.T) {
	cases := []struct {
		behavior string
		duration int
		want     int
	}{
		{domain.BehaviorImpulseBuyer, 30, 9}, // 6 base * 1.5
		{domain.BehaviorResearcher, 30, 4},   // 6 base * 0.7, truncated
		{domain.BehaviorTrendFollow, 30, 7},  // 6 base * 1.2
		{domain.BehaviorNeedsBased, 30, 6},   // unlisted behavior keeps base
		{domain.BehaviorImpulseBuyer, 4, 0},  // under five minutes, no events
	}

	for _, tc := range cases {
		if got := eventCount(tc.behavior, tc.duration); got != tc.want {
			t.Errorf("eventCount(%s, %d) = %d, want %d", tc.behavior, tc.duration, got, tc.want)
		}
	}
}

func TestGenerateEventsSpacing(t *testing.T) {
	svc := NewSimulationService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, &fakeCatalog{}, stubRand{})

	profile := profileWithBehavior(domain.BehaviorImpulseBuyer)
	events := svc.generateEvents(profile, 30)

	if len(events) != 9 {
		t.Fatalf("expected 9 events, got %d", len(events))
	}

	wantSpacing := time.Duration(30.0 / 9.0 * float64(time.Minute))
	for i := 1; i < len(events); i++ {
		gap := events[i].Timestamp.Sub(events[i-1].Timestamp)
		if gap != wantSpacing {
			t.Errorf("event %d gap = %v, want %v", i, gap, wantSpacing)
		}
	}
}

func TestGenerateSessionUnknownUser(t *testing.T) {
	svc := NewSimulationService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, &fakeCatalog{}, stubRand{})

	_, err := svc.GenerateSession(context.Background(), 99, 30)
	if err == nil || err.Error() != "user not found" {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestGenerateSessionDefaults(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{1: {ID: 1, PersonaType: "practical_buyer"}}}
	catalog := &fakeCatalog{profile: profileWithBehavior(domain.BehaviorNeedsBased)}
	svc := NewSimulationService(users, &fakeProductRepo{}, &fakePurchaseRepo{}, catalog, stubRand{})

	session, err := svc.GenerateSession(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.DurationMinutes != 30 {
		t.Errorf("expected default duration 30, got %d", session.DurationMinutes)
	}
	if session.UserID != 1 {
		t.Errorf("expected user 1, got %d", session.UserID)
	}
	if session.SessionID == "" {
		t.Error("expected a session id")
	}
	if len(session.Events) != 6 {
		t.Errorf("expected 6 events for the default session, got %d", len(session.Events))
	}
}

func TestPurchaseProbabilityClamp(t *testing.T) {
	profile := domain.PersonaProfile{
		PriceRange:          domain.PriceRange{Min: 10, Max: 100},
		PreferredCategories: []string{"Electronics"},
		DiscountSensitivity: domain.SensitivityHigh,
	}
	product := domain.Product{
		Price:              50,
		Category:           "Electronics",
		Rating:             4.5,
		DiscountPercentage: 20,
	}

	// 0.5 + 0.2 + 0.2 + 0.1 + 0.2 = 1.2, clamped
	if got := purchaseProbability(product, profile); got != 1.0 {
		t.Errorf("expected probability 1.0, got %v", got)
	}
}

func TestPurchaseProbabilityBase(t *testing.T) {
	profile := domain.PersonaProfile{
		PriceRange:          domain.PriceRange{Min: 10, Max: 100},
		PreferredCategories: []string{"Electronics"},
		DiscountSensitivity: domain.SensitivityLow,
	}
	product := domain.Product{
		Price:    500, // outside price range
		Category: "Books",
		Rating:   3.0,
	}

	if got := purchaseProbability(product, profile); got != 0.5 {
		t.Errorf("expected base probability 0.5, got %v", got)
	}
}

func TestPotentialPurchasesStoreFailure(t *testing.T) {
	products := &fakeProductRepo{filteredErr: errors.New("db down")}
	svc := NewSimulationService(&fakeUserRepo{}, products, &fakePurchaseRepo{}, &fakeCatalog{}, stubRand{})

	got := svc.potentialPurchases(context.Background(), profileWithBehavior(domain.BehaviorNeedsBased))
	if len(got) != 0 {
		t.Errorf("expected empty potential purchases, got %d", len(got))
	}
}

func TestPotentialPurchasesAcceptAll(t *testing.T) {
	products := &fakeProductRepo{filtered: []domain.Product{
		{ID: 1, Name: "A", Price: 50, Category: "Home & Garden", Rating: 4.5},
		{ID: 2, Name: "B", Price: 60, Category: "Home & Garden", Rating: 3.0},
	}}
	// Float64 of 0 always accepts
	svc := NewSimulationService(&fakeUserRepo{}, products, &fakePurchaseRepo{}, &fakeCatalog{}, stubRand{floatVal: 0})

	got := svc.potentialPurchases(context.Background(), profileWithBehavior(domain.BehaviorNeedsBased))
	if len(got) != 2 {
		t.Fatalf("expected 2 accepted purchases, got %d", len(got))
	}
	// 0.5 base + 0.2 price + 0.2 category + 0.1 rating
	if got[0].PurchaseProbability != 1.0 {
		t.Errorf("expected probability 1.0, got %v", got[0].PurchaseProbability)
	}
	if got[1].PurchaseProbability != 0.9 {
		t.Errorf("expected probability 0.9, got %v", got[1].PurchaseProbability)
	}
}

func TestAnalyzePersona(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, PersonaType: "practical_buyer", CreatedAt: time.Now().Add(-24 * time.Hour)},
	}}
	products := &fakeProductRepo{filtered: []domain.Product{
		{ID: 1, Category: "Electronics"},
		{ID: 2, Category: "Books"},
	}}
	purchases := &fakePurchaseRepo{purchases: []domain.Purchase{
		{UserID: 1, FinalAmount: 100, Items: []domain.PurchaseItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 1},
		}},
		{UserID: 1, FinalAmount: 50, Items: []domain.PurchaseItem{
			{ProductID: 1, Quantity: 2},
		}},
	}}

	svc := NewSimulationService(users, products, purchases, &fakeCatalog{}, stubRand{})

	analysis, err := svc.AnalyzePersona(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.TotalPurchases != 2 {
		t.Errorf("expected 2 purchases, got %d", analysis.TotalPurchases)
	}
	if analysis.TotalSpent != 150 {
		t.Errorf("expected total spent 150, got %v", analysis.TotalSpent)
	}
	if analysis.AvgPurchaseValue != 75 {
		t.Errorf("expected avg 75, got %v", analysis.AvgPurchaseValue)
	}
	// product 1 appears in two purchases, so Electronics leads
	if len(analysis.FavoriteCategories) != 2 || analysis.FavoriteCategories[0] != "Electronics" {
		t.Errorf("unexpected favorites: %v", analysis.FavoriteCategories)
	}
	if analysis.CategoryPreferences["Electronics"] != 2 {
		t.Errorf("expected Electronics count 2, got %d", analysis.CategoryPreferences["Electronics"])
	}
	// account younger than a month divides by one month
	if analysis.ShoppingFrequency != 2 {
		t.Errorf("expected frequency 2, got %v", analysis.ShoppingFrequency)
	}
}

func TestAnalyzeBehaviorEmptySession(t *testing.T) {
	insights := analyzeBehavior(nil, profileWithBehavior(domain.BehaviorNeedsBased))

	if insights.ConversionRate != 0.0 {
		t.Errorf("expected conversion rate 0.0, got %v", insights.ConversionRate)
	}
	if insights.AvgTimePerProduct != 0.0 {
		t.Errorf("expected avg time 0.0, got %v", insights.AvgTimePerProduct)
	}
}

func TestAnalyzeBehaviorCounts(t *testing.T) {
	events := []domain.SessionEvent{
		{EventType: domain.EventViewProduct, Details: map[string]any{"time_spent_seconds": 60}},
		{EventType: domain.EventViewProduct, Details: map[string]any{"time_spent_seconds": 120}},
		{EventType: domain.EventPurchase, Details: map[string]any{}},
		{EventType: domain.EventBrowse, Details: map[string]any{}},
	}

	insights := analyzeBehavior(events, profileWithBehavior(domain.BehaviorResearcher))

	if insights.TotalProductsViewed != 2 {
		t.Errorf("expected 2 views, got %d", insights.TotalProductsViewed)
	}
	if insights.TotalPurchases != 1 {
		t.Errorf("expected 1 purchase, got %d", insights.TotalPurchases)
	}
	if insights.ConversionRate != 0.25 {
		t.Errorf("expected conversion 0.25, got %v", insights.ConversionRate)
	}
	if insights.AvgTimePerProduct != 90.0 {
		t.Errorf("expected avg dwell 90.0, got %v", insights.AvgTimePerProduct)
	}
	if insights.ShoppingStyle != domain.BehaviorResearcher {
		t.Errorf("unexpected shopping style %s", insights.ShoppingStyle)
	}
}
