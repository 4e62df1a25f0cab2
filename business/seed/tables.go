package seed

// Static catalog tables used by the synthetic data generator. Mirrors the
// live store's category taxonomy.

var categories = map[string][]string{
	"Electronics":   {"Smartphones", "Laptops", "Tablets", "Accessories", "Gaming"},
	"Fashion":       {"Men's Clothing", "Women's Clothing", "Shoes", "Accessories", "Jewelry"},
	"Home & Garden": {"Furniture", "Kitchen", "Decor", "Garden", "Tools"},
	"Books":         {"Fiction", "Non-Fiction", "Academic", "Children's", "Cookbooks"},
	"Sports":        {"Fitness", "Outdoor", "Team Sports", "Equipment", "Clothing"},
	"Beauty":        {"Skincare", "Makeup", "Haircare", "Fragrances", "Tools"},
	"Toys":          {"Educational", "Action Figures", "Board Games", "Puzzles", "Dolls"},
	"Automotive":    {"Parts", "Accessories", "Tools", "Electronics", "Maintenance"},
}

var brands = map[string][]string{
	"Electronics":   {"Apple", "Samsung", "Sony", "LG", "Dell", "HP", "Asus", "Lenovo"},
	"Fashion":       {"Nike", "Adidas", "Zara", "H&M", "Uniqlo", "Levi's", "Calvin Klein"},
	"Home & Garden": {"IKEA", "Home Depot", "Wayfair", "Target", "Walmart"},
	"Books":         {"Penguin", "Random House", "HarperCollins", "Simon & Schuster"},
	"Sports":        {"Nike", "Adidas", "Under Armour", "Puma", "Reebok"},
	"Beauty":        {"L'Oreal", "Maybelline", "MAC", "Sephora", "Estee Lauder"},
	"Toys":          {"LEGO", "Mattel", "Hasbro", "Fisher-Price", "Melissa & Doug"},
	"Automotive":    {"Bosch", "NGK", "Mobil 1", "Castrol", "Michelin"},
}

var categoryTags = map[string][]string{
	"Electronics":   {"wireless", "smart", "portable", "high-tech", "premium"},
	"Fashion":       {"trendy", "comfortable", "stylish", "casual", "formal"},
	"Home & Garden": {"durable", "eco-friendly", "modern", "traditional", "space-saving"},
	"Books":         {"bestseller", "award-winning", "educational", "entertaining", "inspirational"},
	"Sports":        {"lightweight", "durable", "performance", "comfortable", "professional"},
	"Beauty":        {"natural", "organic", "long-lasting", "hypoallergenic", "luxury"},
	"Toys":          {"educational", "safe", "fun", "creative", "interactive"},
	"Automotive":    {"reliable", "high-quality", "durable", "performance", "safety"},
}

var defaultTags = []string{"quality", "popular", "trending"}

var basePrices = map[string]float64{
	"Electronics":   500,
	"Fashion":       50,
	"Home & Garden": 100,
	"Books":         20,
	"Sports":        80,
	"Beauty":        30,
	"Toys":          25,
	"Automotive":    150,
}

var personaTypes = []string{
	"budget_conscious", "luxury_lover", "tech_enthusiast",
	"fashion_forward", "practical_buyer", "impulse_shopper",
	"research_heavy", "brand_loyal", "trend_follower",
}

var personaInterests = map[string][]string{
	"tech_enthusiast":  {"technology", "gaming", "photography"},
	"fashion_forward":  {"fashion", "beauty", "art"},
	"budget_conscious": {"DIY", "cooking", "gardening"},
	"luxury_lover":     {"travel", "fashion", "cars"},
}

var allInterests = []string{
	"technology", "fashion", "sports", "cooking", "travel", "music",
	"movies", "books", "fitness", "gaming", "photography", "art",
	"gardening", "DIY", "cars", "pets", "parenting", "business",
}

var incomeLevels = []string{"low", "medium", "high"}
var genders = []string{"male", "female", "other"}
var paymentMethods = []string{"credit_card", "debit_card", "paypal", "cash_on_delivery"}

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery",
	"Quinn", "Dana", "Sam", "Robin", "Charlie", "Drew", "Devon", "Skyler",
}

var lastNames = []string{
	"Smith", "Johnson", "Lee", "Brown", "Garcia", "Martinez", "Davis",
	"Wilson", "Anderson", "Thomas", "Moore", "Clark", "Hall", "Young",
}

var cities = []string{
	"Austin", "Seattle", "Denver", "Chicago", "Boston", "Portland",
	"Atlanta", "Phoenix", "Nashville", "San Diego", "Minneapolis",
}

var productAdjectives = []string{
	"Compact", "Ergonomic", "Premium", "Classic", "Ultra", "Essential",
	"Modern", "Sleek", "Pro", "Everyday",
}
