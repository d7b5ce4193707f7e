package cart

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/CatcoinSupport/Game-Mart/domain"
)

type fakeCartRepo struct {
	carts map[uint]domain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uint]domain.Cart)}
}

func (r *fakeCartRepo) Get(_ context.Context, userID uint) (domain.Cart, error) {
	return r.carts[userID], nil
}

func (r *fakeCartRepo) Save(_ context.Context, userID uint, cart domain.Cart) error {
	r.carts[userID] = cart
	return nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID uint) error {
	delete(r.carts, userID)
	return nil
}

type fakeProductRepo struct {
	products map[uint]domain.Product
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return product, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindBySection(_ context.Context, _ uint) ([]domain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) FindFeatured(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func newTestService() (*cartService, *fakeProductRepo) {
	productRepo := &fakeProductRepo{products: map[uint]domain.Product{
		1: {ID: 1, Name: "100 Free Fire Diamonds", Price: 2.99, Quantity: 50, CustomInputLabel: "Free Fire Player ID", CustomInputRequired: true},
		2: {ID: 2, Name: "$10 Google Play Gift Card", Price: 10.99, Quantity: 20},
		3: {ID: 3, Name: "Low Stock Item", Price: 1.00, Quantity: 2},
	}}

	return NewCartService(newFakeCartRepo(), productRepo), productRepo
}

func TestAddItemMergesSameCustomInput(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 1, 1, "player-42"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	updated, err := s.AddItem(ctx, 7, 1, 2, "player-42")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(updated.Items))
	}
	if updated.Items[0].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", updated.Items[0].Quantity)
	}
}

func TestAddItemDifferentCustomInputOpensNewLine(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 1, 1, "player-42"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	updated, err := s.AddItem(ctx, 7, 1, 1, "player-99")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(updated.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(updated.Items))
	}
}

func TestAddItemRequiresCustomInput(t *testing.T) {
	s, _ := newTestService()

	_, err := s.AddItem(context.Background(), 7, 1, 1, "   ")
	if err == nil {
		t.Fatal("expected error for blank required custom input")
	}
	if got, want := err.Error(), "Free Fire Player ID is required for this product"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestAddItemRejectsOverStock(t *testing.T) {
	s, _ := newTestService()

	if _, err := s.AddItem(context.Background(), 7, 3, 3, ""); err == nil {
		t.Fatal("expected error when requested quantity exceeds stock")
	}
}

func TestViewCartTotal(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 1, 2, "player-42"); err != nil {
		t.Fatalf("add product 1: %v", err)
	}
	if _, err := s.AddItem(ctx, 7, 2, 1, ""); err != nil {
		t.Fatalf("add product 2: %v", err)
	}

	view, err := s.ViewCart(ctx, 7)
	if err != nil {
		t.Fatalf("view cart: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 view lines, got %d", len(view.Items))
	}
	if math.Abs(view.Total-16.97) > 1e-9 {
		t.Errorf("total = %v, want 16.97", view.Total)
	}
}

func TestViewCartSkipsDeletedProducts(t *testing.T) {
	s, productRepo := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 2, 1, ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddItem(ctx, 7, 3, 1, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := productRepo.Delete(ctx, 3); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	view, err := s.ViewCart(ctx, 7)
	if err != nil {
		t.Fatalf("view cart: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("expected deleted product to be skipped, got %d lines", len(view.Items))
	}
	if math.Abs(view.Total-10.99) > 1e-9 {
		t.Errorf("total = %v, want 10.99", view.Total)
	}
}

func TestRemoveItemDropsAllMatchingLines(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 1, 1, "player-42"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddItem(ctx, 7, 1, 1, "player-99"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.AddItem(ctx, 7, 2, 1, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := s.RemoveItem(ctx, 7, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("expected only product 2 to remain, got %d lines", len(updated.Items))
	}
	if updated.Items[0].ProductID != 2 {
		t.Errorf("remaining line product = %d, want 2", updated.Items[0].ProductID)
	}
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	s, productRepo := newTestService()
	ctx := context.Background()

	if _, err := s.AddItem(ctx, 7, 2, 1, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Raise the live price after the line is in the cart.
	product := productRepo.products[2]
	product.Price = 99.99
	productRepo.products[2] = product

	view, err := s.ViewCart(ctx, 7)
	if err != nil {
		t.Fatalf("view cart: %v", err)
	}

	if math.Abs(view.Items[0].Price-10.99) > 1e-9 {
		t.Errorf("snapshot price = %v, want 10.99", view.Items[0].Price)
	}
}
