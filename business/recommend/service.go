package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"personamart/domain"
	"personamart/pkg/logger"
)

// ---- Repository interfaces ----

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// ProductFilter narrows a product scan. Nil bounds and empty category sets
// leave the corresponding dimension unrestricted.
type ProductFilter struct {
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	Limit      int
}

type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
	FindFiltered(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	FindCreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.Product, error)
	FindFeatured(ctx context.Context, limit int) ([]domain.Product, error)
	FindAny(ctx context.Context, limit int) ([]domain.Product, error)
}

// ProductCount is one row of the co-purchase frequency aggregation.
type ProductCount struct {
	ProductID uint64
	Count     int
}

type PurchaseRepository interface {
	DistinctProductIDs(ctx context.Context, userID uint) ([]uint64, error)
	CoPurchaseNeighbors(ctx context.Context, userID uint, productIDs []uint64, minCommon, limit int) ([]uint, error)
	TopProductsForUsers(ctx context.Context, userIDs []uint, exclude []uint64, limit int) ([]ProductCount, error)
}

type PersonaCatalog interface {
	Get(personaType string) domain.PersonaProfile
}

// Rand abstracts the random draws (offer grants) so tests can pin outcomes.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// ---- Service ----

type RecommendationService struct {
	userRepo     UserRepository
	productRepo  ProductRepository
	purchaseRepo PurchaseRepository
	catalog      PersonaCatalog
	rng          Rand
	cfg          Config
}

func NewRecommendationService(
	userRepo UserRepository,
	productRepo ProductRepository,
	purchaseRepo PurchaseRepository,
	catalog PersonaCatalog,
	rng Rand,
	cfg Config,
) *RecommendationService {
	if rng == nil {
		rng = globalRand{}
	}
	return &RecommendationService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		catalog:      catalog,
		rng:          rng,
		cfg:          cfg,
	}
}

// GetRecommendations fans out to the collaborative, content and trending
// scorers for users with purchase history, or to the persona cold-start path
// for users without. Individual scorer failures degrade to empty
// contributions; only an unknown user is an error.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint, limit int) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return domain.RecommendationResult{}, err
	}

	purchasedIDs, err := s.purchaseRepo.DistinctProductIDs(ctx, userID)
	if err != nil {
		// A failing purchase scan must not abort the request; treat the
		// user as cold and continue.
		logger.Warn("purchase history scan failed, treating user as cold", "user_id", userID, "error", err)
		purchasedIDs = nil
	}

	if len(purchasedIDs) == 0 {
		recs := s.personaRecommendations(ctx, user, limit)
		return s.buildResult(userID, recs, limit, domain.RecoTypePersonaBased), nil
	}

	collaborative := s.collaborativeRecommendations(ctx, userID, purchasedIDs, limit)
	content := s.contentRecommendations(ctx, user, limit)
	trending := s.trendingRecommendations(ctx, limit/2)

	combined := s.blend(collaborative, content, trending)

	logger.Debug("recommendations blended",
		"user_id", userID,
		"collaborative", len(collaborative),
		"content", len(content),
		"trending", len(trending),
		"combined", len(combined),
	)

	return s.buildResult(userID, combined, limit, domain.RecoTypePersonalized), nil
}

// GetColdStartRecommendations serves users the store knows nothing about:
// featured products first, any available products as the terminal fallback.
// It never fails, even on an empty store.
func (s *RecommendationService) GetColdStartRecommendations(ctx context.Context, limit int) ([]domain.RecommendationItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 10
	}

	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		logger.Warn("featured product scan failed", "error", err)
		products = nil
	}
	if len(products) > 0 {
		return itemsFromProducts(products, 1.0, domain.RecoSourcePersona), nil
	}

	return s.fallbackRecommendations(ctx, limit), nil
}

func (s *RecommendationService) buildResult(userID uint, recs []domain.RecommendationItem, limit int, recoType string) domain.RecommendationResult {
	if len(recs) > limit {
		recs = recs[:limit]
	}
	if recs == nil {
		recs = []domain.RecommendationItem{}
	}

	return domain.RecommendationResult{
		UserID:             userID,
		Recommendations:    recs,
		Offers:             s.offersForRecommendations(recs),
		RecommendationType: recoType,
		GeneratedAt:        time.Now().UTC(),
	}
}

func itemsFromProducts(products []domain.Product, score float64, source string) []domain.RecommendationItem {
	items := make([]domain.RecommendationItem, 0, len(products))
	for i := range products {
		p := products[i]
		items = append(items, domain.RecommendationItem{
			ProductID: p.ID,
			Product:   &p,
			Score:     score,
			Source:    source,
		})
	}
	return items
}
