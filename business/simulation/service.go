package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"personamart/business/recommend"
	"personamart/domain"
	"personamart/pkg/logger"
	"personamart/pkg/metrics"

	"github.com/google/uuid"
)

// ---- Repository interfaces ----

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type ProductRepository interface {
	FindFiltered(ctx context.Context, filter recommend.ProductFilter) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
}

type PurchaseRepository interface {
	FindByUser(ctx context.Context, userID uint, limit int) ([]domain.Purchase, error)
}

type PersonaCatalog interface {
	Get(personaType string) domain.PersonaProfile
}

// Rand abstracts the simulator's random draws so tests can pin outcomes.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// ---- Service ----

type SimulationService struct {
	userRepo     UserRepository
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	catalog      PersonaCatalog
	rng          Rand
}

func NewSimulationService(
	userRepo UserRepository,
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	catalog PersonaCatalog,
	rng Rand,
) *SimulationService {
	if rng == nil {
		rng = globalRand{}
	}
	return &SimulationService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		catalog:      catalog,
		rng:          rng,
	}
}

// GenerateSession produces one synthetic shopping session for the user's
// persona. Each call is independent and stateless: the event sequence and its
// timestamps are never reused or replayed.
func (s *SimulationService) GenerateSession(ctx context.Context, userID uint, durationMinutes int) (domain.ShoppingSession, error) {
	if err := ctx.Err(); err != nil {
		return domain.ShoppingSession{}, fmt.Errorf("context error: %w", err)
	}
	if durationMinutes <= 0 {
		durationMinutes = 30
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.ShoppingSession{}, err
	}

	profile := s.catalog.Get(user.PersonaType)

	events := s.generateEvents(profile, durationMinutes)
	potential := s.potentialPurchases(ctx, profile)
	insights := analyzeBehavior(events, profile)

	metrics.SessionsGenerated.WithLabelValues(profile.ShoppingBehavior).Inc()

	logger.Debug("session generated",
		"user_id", userID,
		"persona", profile.Type,
		"events", len(events),
		"potential_purchases", len(potential),
	)

	return domain.ShoppingSession{
		UserID:             userID,
		SessionID:          fmt.Sprintf("session_%d_%s", userID, uuid.NewString()),
		DurationMinutes:    durationMinutes,
		PersonaType:        profile.Type,
		Events:             events,
		PotentialPurchases: potential,
		Insights:           insights,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}

// AnalyzePersona summarizes a user's real purchase history: spending totals,
// category preference counts and monthly shopping frequency.
func (s *SimulationService) AnalyzePersona(ctx context.Context, userID uint) (domain.PersonaAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.PersonaAnalysis{}, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.PersonaAnalysis{}, err
	}

	purchases, err := s.purchaseRepo.FindByUser(ctx, userID, 100)
	if err != nil {
		return domain.PersonaAnalysis{}, fmt.Errorf("load purchase history: %w", err)
	}

	totalSpent := 0.0
	productIDs := make([]uint64, 0)
	itemCounts := make(map[uint64]int)
	for _, p := range purchases {
		totalSpent += p.FinalAmount
		for _, item := range p.Items {
			if _, seen := itemCounts[item.ProductID]; !seen {
				productIDs = append(productIDs, item.ProductID)
			}
			itemCounts[item.ProductID]++
		}
	}

	avgValue := 0.0
	if len(purchases) > 0 {
		avgValue = totalSpent / float64(len(purchases))
	}

	categoryCounts := make(map[string]int)
	if len(productIDs) > 0 {
		products, err := s.productRepo.FindByIDs(ctx, productIDs)
		if err != nil {
			logger.Warn("category lookup failed during persona analysis", "user_id", userID, "error", err)
		} else {
			for _, p := range products {
				categoryCounts[p.Category] += itemCounts[p.ID]
			}
		}
	}

	type catCount struct {
		category string
		count    int
	}
	ranked := make([]catCount, 0, len(categoryCounts))
	for c, n := range categoryCounts {
		ranked = append(ranked, catCount{c, n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].category < ranked[j].category
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	favorites := make([]string, 0, len(ranked))
	preferences := make(map[string]int, len(ranked))
	for _, rc := range ranked {
		favorites = append(favorites, rc.category)
		preferences[rc.category] = rc.count
	}

	months := time.Since(user.CreatedAt).Hours() / 24 / 30
	if months < 1 {
		months = 1
	}

	return domain.PersonaAnalysis{
		UserID:              userID,
		PersonaType:         user.PersonaType,
		TotalPurchases:      len(purchases),
		TotalSpent:          totalSpent,
		AvgPurchaseValue:    avgValue,
		FavoriteCategories:  favorites,
		CategoryPreferences: preferences,
		ShoppingFrequency:   float64(len(purchases)) / months,
		AnalysisDate:        time.Now().UTC(),
	}, nil
}
