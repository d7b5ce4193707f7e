package domain

import "time"

const (
	OrderStatusPending  = "pending"
	OrderStatusAccepted = "accepted"
	OrderStatusRejected = "rejected"
)

type Order struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          uint    `gorm:"column:user_id;not null" json:"user_id"`
	PaymentMethodID uint    `gorm:"column:payment_method_id" json:"payment_method_id"`
	TotalAmount     float64 `gorm:"column:total_amount;type:numeric;not null" json:"total_amount"`
	Status          string  `gorm:"column:status;default:pending" json:"status"`

	// PaymentID is the buyer-supplied payment reference, not our key.
	PaymentID                   string `gorm:"column:payment_id;not null" json:"payment_id"`
	PaymentConfirmationFilename string `gorm:"column:payment_confirmation_filename" json:"payment_confirmation_filename"`

	Notes     string      `gorm:"column:notes;type:text" json:"notes"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots quantity and price at purchase time; later product
// price changes do not touch it.
type OrderItem struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	OrderID          uint    `gorm:"column:order_id;not null" json:"order_id"`
	ProductID        uint    `gorm:"column:product_id;not null" json:"product_id"`
	Quantity         int     `gorm:"column:quantity;not null" json:"quantity"`
	Price            float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	CustomInputValue string  `gorm:"column:custom_input_value" json:"custom_input_value"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected:
		return true
	}
	return false
}
