package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CatcoinSupport/Game-Mart/business/catalog"
	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
)

// CartRepository contract interface
type CartRepository interface {
	Get(ctx context.Context, userID uint) (domain.Cart, error)
	Save(ctx context.Context, userID uint, cart domain.Cart) error
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    CartRepository
	productRepo catalog.ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo catalog.ProductRepository) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem puts a product into the user's cart with the price snapshotted
// from the product as it is right now. A line with the same product and the
// same custom input merges; a different custom input opens a new line.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int, customInput string) (domain.Cart, error) {
	if quantity < 1 {
		return domain.Cart{}, errors.New("quantity must be at least 1")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("Product not found for add to cart", err)
		return domain.Cart{}, err
	}

	if product.CustomInputRequired && strings.TrimSpace(customInput) == "" {
		return domain.Cart{}, fmt.Errorf("%s is required for this product", product.CustomInputLabel)
	}

	if quantity > product.Quantity {
		return domain.Cart{}, errors.New("not enough stock available")
	}

	currentCart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.Cart{}, err
	}

	merged := false
	for i := range currentCart.Items {
		item := &currentCart.Items[i]
		if item.ProductID == productID && item.CustomInputValue == customInput {
			item.Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		currentCart.Items = append(currentCart.Items, domain.CartItem{
			ProductID:        productID,
			Quantity:         quantity,
			CustomInputValue: customInput,
			Price:            product.Price,
		})
	}

	if err := s.cartRepo.Save(ctx, userID, currentCart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.Cart{}, err
	}

	return currentCart, nil
}

// RemoveItem drops every cart line holding the product, regardless of
// custom input value.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID uint) (domain.Cart, error) {
	currentCart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.Cart{}, err
	}

	kept := currentCart.Items[:0]
	for _, item := range currentCart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	currentCart.Items = kept

	if err := s.cartRepo.Save(ctx, userID, currentCart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.Cart{}, err
	}

	return currentCart, nil
}

// ViewCart joins cart lines against live products. Lines whose product has
// been deleted meanwhile are silently skipped; prices stay at their
// add-to-cart snapshot.
func (s *cartService) ViewCart(ctx context.Context, userID uint) (domain.CartView, error) {
	currentCart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.CartView{}, err
	}

	view := domain.CartView{Items: []domain.CartViewItem{}}
	for _, item := range currentCart.Items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}

		subtotal := item.Price * float64(item.Quantity)
		view.Items = append(view.Items, domain.CartViewItem{
			Product:          product,
			Quantity:         item.Quantity,
			CustomInputValue: item.CustomInputValue,
			Price:            item.Price,
			Subtotal:         subtotal,
		})
		view.Total += subtotal
	}

	return view, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uint) error {
	return s.cartRepo.Clear(ctx, userID)
}
