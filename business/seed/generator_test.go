package seed

import (
	"math/rand"
	"testing"

	"personamart/domain"
)

func TestGenerateUserFields(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))

	for i := 0; i < 50; i++ {
		user := gen.User()

		if user.Name == "" || user.Email == "" {
			t.Fatalf("user missing identity fields: %+v", user)
		}
		if user.Age < 18 || user.Age > 75 {
			t.Errorf("age out of range: %d", user.Age)
		}
		if _, ok := personaInterests[user.PersonaType]; !ok {
			// every generated persona tag must be a known one
			found := false
			for _, p := range personaTypes {
				if p == user.PersonaType {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("unknown persona type: %s", user.PersonaType)
			}
		}
		if len(user.Interests) == 0 {
			t.Errorf("user has no interests")
		}
		if len(user.FavoriteCategories) == 0 || len(user.FavoriteCategories) > 3 {
			t.Errorf("unexpected favorite category count: %d", len(user.FavoriteCategories))
		}
	}
}

func TestGenerateProductBounds(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(2)))

	for i := 0; i < 100; i++ {
		product := gen.Product()

		base, ok := basePrices[product.Category]
		if !ok {
			t.Fatalf("unknown category: %s", product.Category)
		}
		if product.Price < base*0.5 || product.Price > base*2 {
			t.Errorf("price %v outside [%v, %v] for %s", product.Price, base*0.5, base*2, product.Category)
		}
		if product.Rating < 3.0 || product.Rating > 5.0 {
			t.Errorf("rating out of range: %v", product.Rating)
		}
		if product.DiscountPercentage != 0 && (product.DiscountPercentage < 5 || product.DiscountPercentage > 50) {
			t.Errorf("discount out of range: %v", product.DiscountPercentage)
		}
		if len(product.Tags) < 2 || len(product.Tags) > 5 {
			t.Errorf("unexpected tag count: %d", len(product.Tags))
		}
	}
}

func TestGeneratePurchaseTotals(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(3)))

	products := []domain.Product{
		{ID: 1, Name: "A", Price: 100, DiscountPercentage: 10},
		{ID: 2, Name: "B", Price: 50},
		{ID: 3, Name: "C", Price: 20, DiscountPercentage: 25},
	}

	for i := 0; i < 50; i++ {
		purchase := gen.Purchase(7, products)

		if purchase.UserID != 7 {
			t.Fatalf("wrong user id: %d", purchase.UserID)
		}
		if len(purchase.Items) == 0 {
			t.Fatalf("purchase has no items")
		}
		if purchase.Status != domain.PurchaseStatusCompleted {
			t.Errorf("expected completed status, got %s", purchase.Status)
		}
		if purchase.SessionID == "" {
			t.Errorf("missing session id")
		}

		sum := 0.0
		for _, item := range purchase.Items {
			sum += item.UnitPrice * float64(item.Quantity)
		}
		if sum != purchase.TotalAmount {
			t.Errorf("line totals %v do not match total amount %v", sum, purchase.TotalAmount)
		}
		if purchase.FinalAmount != purchase.TotalAmount-purchase.DiscountAmount {
			t.Errorf("final amount %v inconsistent with total %v and discount %v",
				purchase.FinalAmount, purchase.TotalAmount, purchase.DiscountAmount)
		}
	}
}

func TestGeneratorIsReproducible(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(42)))
	b := NewGenerator(rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		pa, pb := a.Product(), b.Product()
		if pa.Name != pb.Name || pa.Price != pb.Price || pa.Category != pb.Category {
			t.Fatalf("seeded generators diverged at %d: %+v vs %+v", i, pa, pb)
		}
	}
}
