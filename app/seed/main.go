// Command seed wipes the marketplace tables and loads demo catalog data.
package main

import (
	"context"
	"log"

	"github.com/CatcoinSupport/Game-Mart/domain"
	psqlRepo "github.com/CatcoinSupport/Game-Mart/internal/repository/postgres"
	"github.com/CatcoinSupport/Game-Mart/pkg/config"
	"github.com/CatcoinSupport/Game-Mart/pkg/database"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

type demoProduct struct {
	product domain.Product
	section string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	ctx := context.Background()

	// Start from a clean slate.
	for _, table := range []string{"order_items", "orders", "products", "sections", "payment_methods", "site_settings"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Fatal("Failed to clear table", "table", table, "error", err)
		}
	}

	sectionRepo := psqlRepo.NewSectionRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	methodRepo := psqlRepo.NewPaymentMethodRepository(db)
	settingsRepo := psqlRepo.NewSettingsRepository(db)

	sections := []domain.Section{
		{Name: "Free Fire", Description: "Free Fire diamonds, characters, and bundles"},
		{Name: "PUBG Mobile", Description: "PUBG Mobile UC, royale passes, and skins"},
		{Name: "Mobile Legends", Description: "Mobile Legends diamonds and skins"},
		{Name: "Gift Cards", Description: "Digital gift cards for various platforms"},
		{Name: "Crypto Currency", Description: "Digital cryptocurrency vouchers"},
	}

	sectionIDs := make(map[string]uint, len(sections))
	for i := range sections {
		if err := sectionRepo.Create(ctx, &sections[i]); err != nil {
			logger.Fatal("Failed to seed section", "error", err)
		}
		sectionIDs[sections[i].Name] = sections[i].ID
	}

	products := []demoProduct{
		{section: "Free Fire", product: domain.Product{
			Name:                   "100 Free Fire Diamonds",
			Description:            "Get 100 diamonds instantly for Free Fire. Perfect for buying characters and weapons.",
			Price:                  2.99,
			Quantity:               50,
			IsFeatured:             true,
			CustomInputLabel:       "Free Fire Player ID",
			CustomInputPlaceholder: "Enter your Free Fire Player ID",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your Free Fire Player ID to receive diamonds",
		}},
		{section: "Free Fire", product: domain.Product{
			Name:                   "500 Free Fire Diamonds",
			Description:            "Get 500 diamonds for Free Fire. Great value pack for serious players.",
			Price:                  12.99,
			Quantity:               30,
			IsFeatured:             true,
			CustomInputLabel:       "Free Fire Player ID",
			CustomInputPlaceholder: "Enter your Free Fire Player ID",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your Free Fire Player ID to receive diamonds",
		}},
		{section: "PUBG Mobile", product: domain.Product{
			Name:                   "60 PUBG Mobile UC",
			Description:            "Unknown Cash for PUBG Mobile. Buy skins, crates, and royale pass.",
			Price:                  1.99,
			Quantity:               40,
			CustomInputLabel:       "PUBG Mobile Player ID",
			CustomInputPlaceholder: "Enter your PUBG Mobile Player ID",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your PUBG Mobile Player ID to receive UC",
		}},
		{section: "PUBG Mobile", product: domain.Product{
			Name:                   "300 PUBG Mobile UC",
			Description:            "Premium UC pack for PUBG Mobile. Perfect for royale pass and premium crates.",
			Price:                  8.99,
			Quantity:               25,
			IsFeatured:             true,
			CustomInputLabel:       "PUBG Mobile Player ID",
			CustomInputPlaceholder: "Enter your PUBG Mobile Player ID",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your PUBG Mobile Player ID to receive UC",
		}},
		{section: "Mobile Legends", product: domain.Product{
			Name:                   "100 Mobile Legends Diamonds",
			Description:            "Diamonds for Mobile Legends. Buy heroes, skins, and battle passes.",
			Price:                  3.49,
			Quantity:               35,
			CustomInputLabel:       "Mobile Legends User ID",
			CustomInputPlaceholder: "Enter your Mobile Legends User ID",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your Mobile Legends User ID and Zone ID",
		}},
		{section: "Gift Cards", product: domain.Product{
			Name:                   "$10 Google Play Gift Card",
			Description:            "Digital Google Play gift card. Use for apps, games, movies, and more.",
			Price:                  10.99,
			Quantity:               20,
			CustomInputLabel:       "Email Address",
			CustomInputPlaceholder: "Enter email to receive gift card",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your email address to receive the gift card code",
		}},
		{section: "Gift Cards", product: domain.Product{
			Name:                   "$25 Steam Gift Card",
			Description:            "Steam digital gift card. Perfect for buying games and in-game content.",
			Price:                  26.99,
			Quantity:               15,
			IsFeatured:             true,
			CustomInputLabel:       "Steam Username",
			CustomInputPlaceholder: "Enter your Steam username",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your Steam username to receive the gift card",
		}},
		{section: "Crypto Currency", product: domain.Product{
			Name:                   "$5 Bitcoin Voucher",
			Description:            "Digital Bitcoin voucher. Redeem for cryptocurrency in your wallet.",
			Price:                  5.50,
			Quantity:               10,
			CustomInputLabel:       "Bitcoin Wallet Address",
			CustomInputPlaceholder: "Enter your Bitcoin wallet address",
			CustomInputRequired:    true,
			AdminDescription:       "Please enter your Bitcoin wallet address to receive the voucher",
		}},
	}

	for i := range products {
		products[i].product.SectionID = sectionIDs[products[i].section]
		if err := productRepo.Create(ctx, &products[i].product); err != nil {
			logger.Fatal("Failed to seed product", "error", err)
		}
	}

	methods := []domain.PaymentMethod{
		{Name: "Bitcoin", WalletAddress: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", Description: "Pay with Bitcoin - fast and secure", IsActive: true},
		{Name: "Ethereum", WalletAddress: "0x742d35CC6634C0532925a3b8D4c35c8C0F2C0C0C", Description: "Pay with Ethereum - low fees", IsActive: true},
		{Name: "Payeer", WalletAddress: "P1234567890", Description: "Payeer digital wallet payments", IsActive: true},
		{Name: "Perfect Money", WalletAddress: "U1234567", Description: "Perfect Money instant payments", IsActive: true},
	}

	for i := range methods {
		if err := methodRepo.Create(ctx, &methods[i]); err != nil {
			logger.Fatal("Failed to seed payment method", "error", err)
		}
	}

	settings := map[string]string{
		domain.SettingSiteDescription: "Welcome to GameMart - Your trusted marketplace for game codes, digital currencies, and gift cards. Fast delivery, secure payments, and 24/7 support.",
		domain.SettingSenderEmail:     "noreply@gamemart.com",
	}

	for key, value := range settings {
		if err := settingsRepo.Set(ctx, key, value); err != nil {
			logger.Fatal("Failed to seed setting", "error", err)
		}
	}

	logger.Info("Demo data initialized successfully",
		"sections", len(sections),
		"products", len(products),
		"payment_methods", len(methods),
		"settings", len(settings),
	)
}
