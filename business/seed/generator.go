package seed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"personamart/domain"

	"github.com/google/uuid"
)

// Generator produces plausible synthetic User, Product and Purchase records
// matching the live data model. All randomness flows through the injected
// source so seeding runs can be reproduced.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

func (g *Generator) User() domain.User {
	age := 18 + g.rng.Intn(58)
	personaType := personaTypes[g.rng.Intn(len(personaTypes))]

	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]

	return domain.User{
		Name:        first + " " + last,
		Email:       fmt.Sprintf("%s.%s.%s@example.com", strings.ToLower(first), strings.ToLower(last), uuid.NewString()[:8]),
		Password:    uuid.NewString(),
		Age:         age,
		Gender:      genders[g.rng.Intn(len(genders))],
		Location:    cities[g.rng.Intn(len(cities))],
		IncomeLevel: incomeLevels[g.rng.Intn(len(incomeLevels))],
		Interests:   g.interests(personaType, age),
		PersonaType: personaType,
		FavoriteCategories: g.sampleCategories(1 + g.rng.Intn(3)),
	}
}

func (g *Generator) Product() domain.Product {
	category := g.pickCategory()
	subcategories := categories[category]

	base := basePrices[category]
	price := round2(base*0.5 + g.rng.Float64()*base*1.5)

	// 20% of products carry a discount.
	discount := 0.0
	if g.rng.Float64() < 0.2 {
		discount = math.Round((5+g.rng.Float64()*45)*10) / 10
	}

	brandList := brands[category]

	return domain.Product{
		Name:               g.productName(category),
		Category:           category,
		Subcategory:        subcategories[g.rng.Intn(len(subcategories))],
		Price:              price,
		Description:        fmt.Sprintf("A %s pick for the %s section.", strings.ToLower(productAdjectives[g.rng.Intn(len(productAdjectives))]), category),
		Brand:              brandList[g.rng.Intn(len(brandList))],
		Tags:               g.tags(category),
		Rating:             math.Round((3+g.rng.Float64()*2)*10) / 10,
		ReviewCount:        g.rng.Intn(1001),
		StockQuantity:      g.rng.Intn(501),
		IsFeatured:         g.rng.Float64() < 0.1,
		DiscountPercentage: discount,
		TotalSold:          g.rng.Intn(1001),
		CreatedAt:          time.Now().UTC().AddDate(0, 0, -g.rng.Intn(365)),
	}
}

// Purchase builds a completed purchase for the user from 1-5 of the given
// products with per-line discounts, mirroring live pricing.
func (g *Generator) Purchase(userID uint, products []domain.Product) domain.Purchase {
	numItems := 1 + g.rng.Intn(minInt(5, len(products)))
	picked := g.rng.Perm(len(products))[:numItems]

	items := make([]domain.PurchaseItem, 0, numItems)
	totalAmount := 0.0
	discountAmount := 0.0

	for _, idx := range picked {
		p := products[idx]
		quantity := 1 + g.rng.Intn(3)
		lineTotal := p.Price * float64(quantity)
		lineDiscount := p.Price * p.DiscountPercentage / 100 * float64(quantity)

		items = append(items, domain.PurchaseItem{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        quantity,
			UnitPrice:       p.Price,
			TotalPrice:      lineTotal - lineDiscount,
			DiscountApplied: lineDiscount,
		})

		totalAmount += lineTotal
		discountAmount += lineDiscount
	}

	// 10% of purchases get an extra order-level discount.
	if g.rng.Float64() < 0.1 {
		discountAmount += round2(totalAmount * (0.05 + g.rng.Float64()*0.1))
	}

	return domain.Purchase{
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		DiscountAmount:  discountAmount,
		FinalAmount:     totalAmount - discountAmount,
		PaymentMethod:   paymentMethods[g.rng.Intn(len(paymentMethods))],
		ShippingAddress: fmt.Sprintf("%d Main St, %s", 1+g.rng.Intn(9999), cities[g.rng.Intn(len(cities))]),
		Status:          domain.PurchaseStatusCompleted,
		SessionID:       uuid.NewString(),
	}
}

func (g *Generator) interests(personaType string, age int) []string {
	base, ok := personaInterests[personaType]
	if !ok {
		base = g.sampleStrings(allInterests, 3)
	}

	interests := append([]string{}, base...)
	if age < 25 {
		interests = append(interests, "gaming", "music", "social_media")
	} else if age > 50 {
		interests = append(interests, "gardening", "parenting", "business")
	}

	return dedupe(interests)
}

func (g *Generator) pickCategory() string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	// Map order is randomized anyway, but draw through rng so a seeded
	// generator stays reproducible.
	return g.sampleStrings(names, 1)[0]
}

func (g *Generator) sampleCategories(n int) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	return g.sampleStrings(names, n)
}

func (g *Generator) sampleStrings(options []string, n int) []string {
	if n > len(options) {
		n = len(options)
	}
	sorted := append([]string{}, options...)
	sort.Strings(sorted)

	perm := g.rng.Perm(len(sorted))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, sorted[idx])
	}
	return out
}

func (g *Generator) tags(category string) []string {
	pool, ok := categoryTags[category]
	if !ok {
		pool = defaultTags
	}
	return g.sampleStrings(pool, 2+g.rng.Intn(4))
}

func (g *Generator) productName(category string) string {
	adjective := productAdjectives[g.rng.Intn(len(productAdjectives))]
	sub := categories[category][g.rng.Intn(len(categories[category]))]
	return fmt.Sprintf("%s %s %d", adjective, sub, 100+g.rng.Intn(900))
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
