package user

import (
	"context"
	"errors"
	"testing"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	users  map[uint]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return domain.User{}, errors.New("user not found")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, errors.New("user not found")
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func newTestService() (*userService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, validator.New()), repo
}

func register(t *testing.T, service *userService, username, email string) domain.User {
	t.Helper()
	_, created, err := service.Register(context.Background(), &domain.User{
		Username: username,
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return created
}

func TestFirstRegisteredUserBecomesAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service, repo := newTestService()

	first := register(t, service, "alice", "alice@example.com")
	if first.Role != RoleAdmin {
		t.Errorf("first user role = %q, want admin", first.Role)
	}

	second := register(t, service, "bob", "bob@example.com")
	if second.Role != RoleCustomer {
		t.Errorf("second user role = %q, want customer", second.Role)
	}

	stored := repo.users[first.ID]
	if stored.Password == "" || stored.Password == "password123" {
		t.Error("password must be stored hashed")
	}
	if first.Password != "" {
		t.Error("returned user must not carry the password")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service, _ := newTestService()

	register(t, service, "alice", "alice@example.com")

	_, _, err := service.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	if err == nil || err.Error() != "username already exists" {
		t.Errorf("duplicate username err = %v", err)
	}

	_, _, err = service.Register(context.Background(), &domain.User{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err == nil || err.Error() != "email already registered" {
		t.Errorf("duplicate email err = %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service, _ := newTestService()

	_, _, err := service.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "not-an-email",
		Password: "password123",
	})
	if err == nil || err.Error() != "invalid email format" {
		t.Errorf("bad email err = %v", err)
	}

	_, _, err = service.Register(context.Background(), &domain.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})
	if err == nil || err.Error() != "password must be at least 6 characters" {
		t.Errorf("short password err = %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	service, _ := newTestService()

	register(t, service, "alice", "alice@example.com")

	token, user, err := service.Login(context.Background(), "alice", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.Password != "" {
		t.Error("login response must not carry the password")
	}

	if _, _, err := service.Login(context.Background(), "alice", "wrong"); err == nil || err.Error() != "invalid username or password" {
		t.Errorf("wrong password err = %v", err)
	}
	if _, _, err := service.Login(context.Background(), "nobody", "password123"); err == nil || err.Error() != "invalid username or password" {
		t.Errorf("unknown user err = %v", err)
	}
}
