package domain

import "time"

type PaymentMethod struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	WalletAddress string    `gorm:"column:wallet_address;not null" json:"wallet_address"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
