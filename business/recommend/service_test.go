package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

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
	byID     map[uint64]domain.Product
	filtered []domain.Product
	recent   []domain.Product
	featured []domain.Product
	any      []domain.Product

	filteredErr error
	lastFilter  ProductFilter
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []uint64) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindFiltered(_ context.Context, filter ProductFilter) ([]domain.Product, error) {
	f.lastFilter = filter
	if f.filteredErr != nil {
		return nil, f.filteredErr
	}
	return f.filtered, nil
}

func (f *fakeProductRepo) FindCreatedSince(_ context.Context, _ time.Time, _ int) ([]domain.Product, error) {
	return f.recent, nil
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, _ int) ([]domain.Product, error) {
	return f.featured, nil
}

func (f *fakeProductRepo) FindAny(_ context.Context, _ int) ([]domain.Product, error) {
	return f.any, nil
}

type fakePurchaseRepo struct {
	purchased []uint64
	neighbors []uint
	counts    []ProductCount

	purchasedErr error
	neighborsErr error

	neighborCalls int
}

func (f *fakePurchaseRepo) DistinctProductIDs(_ context.Context, _ uint) ([]uint64, error) {
	if f.purchasedErr != nil {
		return nil, f.purchasedErr
	}
	return f.purchased, nil
}

func (f *fakePurchaseRepo) CoPurchaseNeighbors(_ context.Context, _ uint, _ []uint64, _, _ int) ([]uint, error) {
	f.neighborCalls++
	if f.neighborsErr != nil {
		return nil, f.neighborsErr
	}
	return f.neighbors, nil
}

func (f *fakePurchaseRepo) TopProductsForUsers(_ context.Context, _ []uint, _ []uint64, _ int) ([]ProductCount, error) {
	return f.counts, nil
}

type fakeCatalog struct {
	profile domain.PersonaProfile
}

func (f *fakeCatalog) Get(_ string) domain.PersonaProfile { return f.profile }

type fixedRand struct {
	value float64
}

func (f fixedRand) Float64() float64 { return f.value }

func newTestService(users *fakeUserRepo, products *fakeProductRepo, purchases *fakePurchaseRepo, rng Rand) *RecommendationService {
	catalog := &fakeCatalog{profile: domain.PersonaProfile{
		Type:       "practical_buyer",
		PriceRange: domain.PriceRange{Min: 20, Max: 300},
	}}
	return NewRecommendationService(users, products, purchases, catalog, rng, DefaultConfig())
}

func TestGetRecommendationsUnknownUser(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{1})

	_, err := svc.GetRecommendations(context.Background(), 42, 10)
	if err == nil || err.Error() != "user not found" {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestGetRecommendationsColdUserSkipsCollaborative(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, PersonaType: "practical_buyer"},
	}}
	products := &fakeProductRepo{filtered: []domain.Product{
		{ID: 10, Name: "Widget", Price: 40},
	}}
	purchases := &fakePurchaseRepo{} // no purchase history

	svc := newTestService(users, products, purchases, fixedRand{1})

	result, err := svc.GetRecommendations(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RecommendationType != domain.RecoTypePersonaBased {
		t.Errorf("expected persona_based, got %s", result.RecommendationType)
	}
	if purchases.neighborCalls != 0 {
		t.Errorf("collaborative path ran for a cold user")
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Source != domain.RecoSourcePersona {
		t.Errorf("unexpected recommendations: %+v", result.Recommendations)
	}
}

func TestGetRecommendationsHistoryScanErrorTreatsUserAsCold(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, PersonaType: "practical_buyer"},
	}}
	products := &fakeProductRepo{filtered: []domain.Product{{ID: 10, Price: 40}}}
	purchases := &fakePurchaseRepo{purchasedErr: errors.New("db down")}

	svc := newTestService(users, products, purchases, fixedRand{1})

	result, err := svc.GetRecommendations(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecommendationType != domain.RecoTypePersonaBased {
		t.Errorf("expected persona_based, got %s", result.RecommendationType)
	}
}

func TestGetRecommendationsScorerFailureDegrades(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, FavoriteCategories: []string{"Electronics"}},
	}}
	products := &fakeProductRepo{
		filtered: []domain.Product{{ID: 20, Category: "Electronics", Rating: 4}},
	}
	purchases := &fakePurchaseRepo{
		purchased:    []uint64{5},
		neighborsErr: errors.New("aggregation timeout"),
	}

	svc := newTestService(users, products, purchases, fixedRand{1})

	result, err := svc.GetRecommendations(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecommendationType != domain.RecoTypePersonalized {
		t.Errorf("expected personalized, got %s", result.RecommendationType)
	}
	if len(result.Recommendations) == 0 {
		t.Errorf("content contribution should survive a collaborative failure")
	}
}

func TestBlendWeightsAndOrdering(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{1})

	p1 := &domain.Product{ID: 1}
	p2 := &domain.Product{ID: 2}

	collaborative := []domain.RecommendationItem{
		{ProductID: 1, Product: p1, Score: 5, Source: domain.RecoSourceCollaborative},
	}
	content := []domain.RecommendationItem{
		{ProductID: 1, Product: p1, Score: 3, Source: domain.RecoSourceContent},
		{ProductID: 2, Product: p2, Score: 8, Source: domain.RecoSourceContent},
	}

	combined := svc.blend(collaborative, content, nil)

	if len(combined) != 2 {
		t.Fatalf("expected 2 combined items, got %d", len(combined))
	}

	// product 1: 5*0.4 + 3*0.4 = 3.2; product 2: 8*0.4 = 3.2; ties keep
	// first-seen order, so product 1 leads.
	if combined[0].ProductID != 1 || combined[1].ProductID != 2 {
		t.Errorf("unexpected order: %d, %d", combined[0].ProductID, combined[1].ProductID)
	}
	if got := combined[0].Score; got != 3.2 {
		t.Errorf("expected combined score 3.2, got %v", got)
	}
	// a single-source product keeps its one weighted term
	if got := combined[1].Score; got != 3.2 {
		t.Errorf("expected single-source score 3.2, got %v", got)
	}
	if combined[0].Source != domain.RecoSourceCollaborative {
		t.Errorf("first-seen source should win, got %s", combined[0].Source)
	}
}

func TestContentScore(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{1})

	user := domain.User{
		FavoriteCategories: []string{"Electronics"},
		Interests:          []string{"gaming", "music"},
		PersonaType:        "tech_enthusiast",
	}
	product := domain.Product{
		Category: "Electronics",
		Tags:     []string{"Gaming", "portable"},
		Rating:   4.0,
	}

	// category 3 + one interest-tag match 2 (case-insensitive) + tech
	// bonus 3 + rating 4*0.5
	if got := svc.contentScore(user, product); got != 10.0 {
		t.Errorf("expected score 10.0, got %v", got)
	}

	// an interest matching several tags still counts once
	multiTag := domain.Product{
		Category: "Fashion",
		Tags:     []string{"gaming", "gaming-gear"},
		Rating:   0,
	}
	if got := svc.contentScore(user, multiTag); got != 2.0 {
		t.Errorf("expected score 2.0, got %v", got)
	}
}

func TestOffersDiscountedPrice(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{1})

	recs := []domain.RecommendationItem{
		{ProductID: 1, Product: &domain.Product{ID: 1, Name: "Thing", Price: 100, DiscountPercentage: 20}},
	}

	offers := svc.offersForRecommendations(recs)
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	if offers[0].OfferType != domain.OfferTypeDiscount {
		t.Errorf("expected discount offer, got %s", offers[0].OfferType)
	}
	if offers[0].DiscountedPrice != 80.0 {
		t.Errorf("expected discounted price 80.0, got %v", offers[0].DiscountedPrice)
	}
}

func TestOffersFreeShippingDraw(t *testing.T) {
	recs := []domain.RecommendationItem{
		{ProductID: 1, Product: &domain.Product{ID: 1, Name: "Thing", Price: 50}},
	}

	// draw below the odds grants the offer
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{0.05})
	offers := svc.offersForRecommendations(recs)
	if len(offers) != 1 || offers[0].OfferType != domain.OfferTypeFreeShipping {
		t.Fatalf("expected a free shipping offer, got %+v", offers)
	}

	// draw above the odds does not
	svc = newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{0.5})
	offers = svc.offersForRecommendations(recs)
	if len(offers) != 0 {
		t.Fatalf("expected no offers, got %+v", offers)
	}
}

func TestColdStartEmptyStore(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeProductRepo{}, &fakePurchaseRepo{}, fixedRand{1})

	items, err := svc.GetColdStartRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty recommendations, got %d", len(items))
	}
}

func TestColdStartPrefersFeatured(t *testing.T) {
	products := &fakeProductRepo{
		featured: []domain.Product{{ID: 7, IsFeatured: true}},
		any:      []domain.Product{{ID: 8}},
	}
	svc := newTestService(&fakeUserRepo{}, products, &fakePurchaseRepo{}, fixedRand{1})

	items, err := svc.GetColdStartRecommendations(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 7 {
		t.Fatalf("expected featured product 7, got %+v", items)
	}
	if items[0].Score != 1.0 {
		t.Errorf("expected score 1.0, got %v", items[0].Score)
	}
}

func TestPersonaFilterIncomeOverride(t *testing.T) {
	users := &fakeUserRepo{users: map[uint]domain.User{
		1: {ID: 1, PersonaType: "luxury_lover", IncomeLevel: domain.IncomeLow},
	}}
	products := &fakeProductRepo{filtered: []domain.Product{{ID: 3, Price: 30}}}
	purchases := &fakePurchaseRepo{}

	svc := newTestService(users, products, purchases, fixedRand{1})

	if _, err := svc.GetRecommendations(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// low income caps the price even for a luxury persona
	if products.lastFilter.MinPrice != nil {
		t.Errorf("expected no price floor, got %v", *products.lastFilter.MinPrice)
	}
	if products.lastFilter.MaxPrice == nil || *products.lastFilter.MaxPrice != 50 {
		t.Errorf("expected price cap 50, got %v", products.lastFilter.MaxPrice)
	}
}
