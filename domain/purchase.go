package domain

import "time"

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusCancelled = "cancelled"
	PurchaseStatusRefunded  = "refunded"
)

// Purchase is an append-only record. Rows are never updated after creation;
// user and product aggregates are incremented in the same transaction that
// inserts the purchase.
type Purchase struct {
	ID              uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	Items           []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items"`
	TotalAmount     float64        `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
	DiscountAmount  float64        `gorm:"column:discount_amount;type:numeric;default:0" json:"discount_amount"`
	FinalAmount     float64        `gorm:"column:final_amount;type:numeric;not null" json:"final_amount"`
	PaymentMethod   string         `gorm:"column:payment_method" json:"payment_method"`
	ShippingAddress string         `gorm:"column:shipping_address;type:text" json:"shipping_address"`
	Status          string         `gorm:"column:status;default:completed" json:"status"`
	SessionID       string         `gorm:"column:session_id" json:"session_id,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}

type PurchaseItem struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID      uint64  `gorm:"column:purchase_id;not null;index" json:"purchase_id"`
	ProductID       uint64  `gorm:"column:product_id;not null;index" json:"product_id"`
	ProductName     string  `gorm:"column:product_name;type:text" json:"product_name"`
	Quantity        int     `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice       float64 `gorm:"column:unit_price;type:numeric;not null" json:"unit_price"`
	TotalPrice      float64 `gorm:"column:total_price;type:numeric;not null" json:"total_price"`
	DiscountApplied float64 `gorm:"column:discount_applied;type:numeric;default:0" json:"discount_applied"`
}

func (PurchaseItem) TableName() string {
	return "purchase_items"
}
