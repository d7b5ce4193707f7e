package domain

const (
	SettingSiteDescription = "site_description"
	SettingSenderEmail     = "sender_email"

	DefaultSiteDescription = "Welcome to our Digital Goods Marketplace - Your trusted source for game codes, digital currencies, and more!"
	DefaultSenderEmail     = "noreply@marketplace.com"
)

type SiteSetting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"column:key;unique;not null" json:"key"`
	Value string `gorm:"column:value;type:text" json:"value"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
