package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	IncomeLow    = "low"
	IncomeMedium = "medium"
	IncomeHigh   = "high"
)

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"column:name;not null" json:"name"`
	Email      string `gorm:"column:email;unique;not null" json:"email"`
	Password   string `gorm:"column:password;not null" json:"-"`
	Age        int    `gorm:"column:age" json:"age"`
	Gender     string `gorm:"column:gender" json:"gender"`
	Location   string `gorm:"column:location" json:"location"`
	Role       string `gorm:"column:role;default:customer" json:"role"`

	// Declared preference signals read by the recommendation core.
	IncomeLevel        string                      `gorm:"column:income_level;default:medium" json:"income_level"`
	Interests          datatypes.JSONSlice[string] `gorm:"column:interests;type:jsonb" json:"interests"`
	PersonaType        string                      `gorm:"column:persona_type;default:practical_buyer" json:"persona_type"`
	FavoriteCategories datatypes.JSONSlice[string] `gorm:"column:favorite_categories;type:jsonb" json:"favorite_categories"`

	// Running aggregates, incremented only by purchase completion.
	TotalPurchases int     `gorm:"column:total_purchases;default:0" json:"total_purchases"`
	TotalSpent     float64 `gorm:"column:total_spent;default:0" json:"total_spent"`

	LastLogin *time.Time     `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
