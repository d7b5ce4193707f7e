package orders

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/uploads"
)

type fakeOrdersRepo struct {
	orders      map[uint]*domain.Order
	nextID      uint
	productRepo *fakeProductRepo
}

func newFakeOrdersRepo(productRepo *fakeProductRepo) *fakeOrdersRepo {
	return &fakeOrdersRepo{
		orders:      make(map[uint]*domain.Order),
		nextID:      1,
		productRepo: productRepo,
	}
}

func (r *fakeOrdersRepo) CreateWithItems(_ context.Context, order *domain.Order, items []domain.OrderItem) error {
	order.ID = r.nextID
	r.nextID++

	for i := range items {
		items[i].OrderID = order.ID
		product := r.productRepo.products[items[i].ProductID]
		product.Quantity -= items[i].Quantity
		r.productRepo.products[items[i].ProductID] = product
	}
	order.Items = items

	stored := *order
	r.orders[order.ID] = &stored

	return nil
}

func (r *fakeOrdersRepo) FindByID(_ context.Context, id uint) (domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, errors.New("order not found")
	}
	return *order, nil
}

func (r *fakeOrdersRepo) FindByUser(_ context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrdersRepo) FindAll(_ context.Context, status string) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range r.orders {
		if status == "" || order.Status == status {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrdersRepo) FindRecent(_ context.Context, _ int) ([]domain.Order, error) {
	return nil, nil
}

func (r *fakeOrdersRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Status = status
	return nil
}

func (r *fakeOrdersRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, order := range r.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrdersRepo) SumTotalByStatus(_ context.Context, status string) (float64, error) {
	var total float64
	for _, order := range r.orders {
		if order.Status == status {
			total += order.TotalAmount
		}
	}
	return total, nil
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

func (r *fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error)             { return nil, nil }
func (r *fakeProductRepo) FindBySection(_ context.Context, _ uint) ([]domain.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) FindFeatured(_ context.Context) ([]domain.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ uint) error                   { return nil }
func (r *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeSectionRepo struct{}

func (fakeSectionRepo) Create(_ context.Context, _ *domain.Section) error { return nil }
func (fakeSectionRepo) FindByID(_ context.Context, _ uint) (domain.Section, error) {
	return domain.Section{}, nil
}
func (fakeSectionRepo) FindAll(_ context.Context) ([]domain.Section, error) { return nil, nil }
func (fakeSectionRepo) Delete(_ context.Context, _ uint) error              { return nil }
func (fakeSectionRepo) Count(_ context.Context) (int64, error)              { return 0, nil }

type fakeUserRepo struct{}

func (fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	return domain.User{ID: id, Username: "alice", Email: "alice@example.com"}, nil
}
func (fakeUserRepo) FindByUsername(_ context.Context, _ string) (domain.User, error) {
	return domain.User{}, errors.New("user not found")
}
func (fakeUserRepo) FindByEmail(_ context.Context, _ string) (domain.User, error) {
	return domain.User{}, errors.New("user not found")
}
func (fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) { return nil, nil }
func (fakeUserRepo) Count(_ context.Context) (int64, error)           { return 1, nil }

type fakeMethodRepo struct {
	methods map[uint]domain.PaymentMethod
}

func (r *fakeMethodRepo) FindByID(_ context.Context, id uint) (domain.PaymentMethod, error) {
	method, ok := r.methods[id]
	if !ok {
		return domain.PaymentMethod{}, errors.New("payment method not found")
	}
	return method, nil
}

type fakeCartService struct {
	view    domain.CartView
	cleared int
}

func (s *fakeCartService) ViewCart(_ context.Context, _ uint) (domain.CartView, error) {
	return s.view, nil
}

func (s *fakeCartService) ClearCart(_ context.Context, _ uint) error {
	s.cleared++
	s.view = domain.CartView{}
	return nil
}

type fakeNotifRepo struct {
	subjects []string
	bodies   []string
	fail     bool
}

func (r *fakeNotifRepo) SendEmail(_, _, subject, message string) error {
	if r.fail {
		return errors.New("mail log unavailable")
	}
	r.subjects = append(r.subjects, subject)
	r.bodies = append(r.bodies, message)
	return nil
}

type fakeProofStore struct {
	saved []string
}

func (s *fakeProofStore) Save(originalFilename string, _ io.Reader) (string, error) {
	if !uploads.AllowedFile(originalFilename) {
		return "", uploads.ErrFileType
	}
	s.saved = append(s.saved, originalFilename)
	return "stored-proof.png", nil
}

type testEnv struct {
	service    *ordersService
	ordersRepo *fakeOrdersRepo
	cart       *fakeCartService
	notif      *fakeNotifRepo
	proofs     *fakeProofStore
}

func newTestEnv() *testEnv {
	productRepo := &fakeProductRepo{products: map[uint]domain.Product{
		1: {ID: 1, Name: "100 Free Fire Diamonds", Price: 2.99, Quantity: 50},
		2: {ID: 2, Name: "$10 Google Play Gift Card", Price: 10.99, Quantity: 20},
	}}

	ordersRepo := newFakeOrdersRepo(productRepo)
	methodRepo := &fakeMethodRepo{methods: map[uint]domain.PaymentMethod{
		1: {ID: 1, Name: "Bitcoin", IsActive: true},
		2: {ID: 2, Name: "Retired Wallet", IsActive: false},
	}}
	cart := &fakeCartService{}
	notif := &fakeNotifRepo{}
	proofs := &fakeProofStore{}

	service := NewOrdersService(ordersRepo, methodRepo, cart, fakeUserRepo{}, productRepo, fakeSectionRepo{}, notif, proofs)

	return &testEnv{
		service:    service,
		ordersRepo: ordersRepo,
		cart:       cart,
		notif:      notif,
		proofs:     proofs,
	}
}

func filledCart() domain.CartView {
	return domain.CartView{
		Items: []domain.CartViewItem{
			{
				Product:          domain.Product{ID: 1, Name: "100 Free Fire Diamonds"},
				Quantity:         2,
				CustomInputValue: "player-42",
				Price:            2.99,
				Subtotal:         5.98,
			},
			{
				Product:  domain.Product{ID: 2, Name: "$10 Google Play Gift Card"},
				Quantity: 1,
				Price:    10.99,
				Subtotal: 10.99,
			},
		},
		Total: 16.97,
	}
}

func validInput() CheckoutInput {
	return CheckoutInput{
		PaymentMethodID: 1,
		PaymentID:       "TX-1001",
		ProofFilename:   "proof.png",
		Proof:           strings.NewReader("image-bytes"),
	}
}

func TestCheckoutEmptyCartCreatesNothing(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Checkout(context.Background(), 7, validInput())
	if err == nil {
		t.Fatal("expected error for empty cart")
	}

	if len(env.ordersRepo.orders) != 0 {
		t.Errorf("expected no orders, found %d", len(env.ordersRepo.orders))
	}
}

func TestCheckoutValidationSequence(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*CheckoutInput)
		wantErr string
	}{
		{
			name:    "missing payment method",
			mutate:  func(in *CheckoutInput) { in.PaymentMethodID = 0 },
			wantErr: "please select a payment method",
		},
		{
			name:    "unknown payment method",
			mutate:  func(in *CheckoutInput) { in.PaymentMethodID = 99 },
			wantErr: "payment method not found",
		},
		{
			name:    "inactive payment method",
			mutate:  func(in *CheckoutInput) { in.PaymentMethodID = 2 },
			wantErr: "payment method is not available",
		},
		{
			name:    "blank payment reference",
			mutate:  func(in *CheckoutInput) { in.PaymentID = "   " },
			wantErr: "payment id is required",
		},
		{
			name: "missing proof",
			mutate: func(in *CheckoutInput) {
				in.Proof = nil
				in.ProofFilename = ""
			},
			wantErr: "payment confirmation image is required",
		},
		{
			name:    "disallowed proof extension",
			mutate:  func(in *CheckoutInput) { in.ProofFilename = "proof.exe" },
			wantErr: "invalid payment confirmation image",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.cart.view = filledCart()

			input := validInput()
			tc.mutate(&input)

			_, err := env.service.Checkout(context.Background(), 7, input)
			if err == nil {
				t.Fatal("expected checkout to fail")
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q, want %q", err.Error(), tc.wantErr)
			}

			if len(env.ordersRepo.orders) != 0 {
				t.Errorf("expected no orders after failed validation, found %d", len(env.ordersRepo.orders))
			}
			if env.cart.cleared != 0 {
				t.Error("cart must not be cleared on failed checkout")
			}
			if len(env.notif.subjects) != 0 {
				t.Error("no notification expected on failed checkout")
			}
		})
	}
}

func TestCheckoutSuccess(t *testing.T) {
	env := newTestEnv()
	env.cart.view = filledCart()

	order, err := env.service.Checkout(context.Background(), 7, validInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Status != domain.OrderStatusPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if math.Abs(order.TotalAmount-16.97) > 1e-9 {
		t.Errorf("total = %v, want 16.97", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	if math.Abs(order.Items[0].Price-2.99) > 1e-9 || math.Abs(order.Items[1].Price-10.99) > 1e-9 {
		t.Error("order items must carry cart-snapshot prices")
	}
	if order.PaymentConfirmationFilename != "stored-proof.png" {
		t.Errorf("proof filename = %q", order.PaymentConfirmationFilename)
	}

	// Stock decremented by purchased quantities.
	if got := env.ordersRepo.productRepo.products[1].Quantity; got != 48 {
		t.Errorf("product 1 stock = %d, want 48", got)
	}
	if got := env.ordersRepo.productRepo.products[2].Quantity; got != 19 {
		t.Errorf("product 2 stock = %d, want 19", got)
	}

	if env.cart.cleared != 1 {
		t.Errorf("cart cleared %d times, want 1", env.cart.cleared)
	}

	if len(env.notif.subjects) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(env.notif.subjects))
	}
	if env.notif.subjects[0] != "Order Confirmation #1" {
		t.Errorf("subject = %q", env.notif.subjects[0])
	}
	body := env.notif.bodies[0]
	for _, want := range []string{"100 Free Fire Diamonds x 2 - $5.98", "(Input: player-42)", "Total Amount: $16.97", "Payment ID: TX-1001"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestCheckoutSucceedsWhenNotificationFails(t *testing.T) {
	env := newTestEnv()
	env.cart.view = filledCart()
	env.notif.fail = true

	order, err := env.service.Checkout(context.Background(), 7, validInput())
	if err != nil {
		t.Fatalf("checkout should succeed despite notification failure: %v", err)
	}

	if order.ID == 0 {
		t.Error("expected a persisted order")
	}
}

func TestUpdateStatusNotifiesExactlyOnce(t *testing.T) {
	env := newTestEnv()
	env.cart.view = filledCart()

	order, err := env.service.Checkout(context.Background(), 7, validInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	env.notif.subjects = nil
	env.notif.bodies = nil

	updated, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusAccepted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.OrderStatusAccepted {
		t.Errorf("status = %q, want accepted", updated.Status)
	}
	if len(env.notif.subjects) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(env.notif.subjects))
	}
	if env.notif.subjects[0] != "Order #1 Status Update - Accepted" {
		t.Errorf("subject = %q", env.notif.subjects[0])
	}

	// Re-applying the same status is a silent no-op.
	if _, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusAccepted); err != nil {
		t.Fatalf("same-status update: %v", err)
	}
	if len(env.notif.subjects) != 1 {
		t.Errorf("same-status update must not notify, got %d notifications", len(env.notif.subjects))
	}
}

func TestUpdateStatusTerminalStates(t *testing.T) {
	env := newTestEnv()
	env.cart.view = filledCart()

	order, err := env.service.Checkout(context.Background(), 7, validInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if _, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusAccepted); err == nil {
		t.Error("expected error when leaving a terminal state")
	}

	if _, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusPending); err == nil {
		t.Error("pending is never a valid transition target")
	}

	if _, err := env.service.UpdateStatus(context.Background(), order.ID, "shipped"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestRejectedNotificationContent(t *testing.T) {
	env := newTestEnv()
	env.cart.view = filledCart()

	order, err := env.service.Checkout(context.Background(), 7, validInput())
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	env.notif.subjects = nil
	env.notif.bodies = nil

	if _, err := env.service.UpdateStatus(context.Background(), order.ID, domain.OrderStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if len(env.notif.bodies) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(env.notif.bodies))
	}
	body := env.notif.bodies[0]
	for _, want := range []string{"contact our support team", "Order Total: $16.97", "Payment ID: TX-1001"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
