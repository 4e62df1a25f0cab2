package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;type:text;not null" json:"name"`
	Category    string  `gorm:"column:category;type:text;not null" json:"category"`
	Subcategory string  `gorm:"column:subcategory;type:text" json:"subcategory"`
	Price       float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Brand       string  `gorm:"column:brand;type:text" json:"brand"`

	Tags               datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	Rating             float64                     `gorm:"column:rating;type:numeric;default:0" json:"rating"`
	ReviewCount        int                         `gorm:"column:review_count;default:0" json:"review_count"`
	StockQuantity      int                         `gorm:"column:stock_quantity;default:0" json:"stock_quantity"`
	IsFeatured         bool                        `gorm:"column:is_featured;default:false" json:"is_featured"`
	DiscountPercentage float64                     `gorm:"column:discount_percentage;type:numeric;default:0" json:"discount_percentage"`

	// Sales aggregates, incremented only by purchase completion.
	TotalSold        int     `gorm:"column:total_sold;default:0" json:"total_sold"`
	RevenueGenerated float64 `gorm:"column:revenue_generated;type:numeric;default:0" json:"revenue_generated"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
