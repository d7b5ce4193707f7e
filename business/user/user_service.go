package user

import (
	"context"
	"errors"
	"strconv"

	"github.com/CatcoinSupport/Game-Mart/domain"
	"github.com/CatcoinSupport/Game-Mart/pkg/logger"
	"github.com/CatcoinSupport/Game-Mart/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates the account and logs the user straight in. The very
// first registered user becomes the admin.
func (s *userService) Register(ctx context.Context, user *domain.User) (string, domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return "", domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return "", domain.User{}, errors.New("password must be at least 6 characters")
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Username already exists")
		return "", domain.User{}, errors.New("username already exists")
	}

	existingUser, err = s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already registered")
		return "", domain.User{}, errors.New("email already registered")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, errors.New("failed to hash password")
	}

	role := RoleCustomer
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		logger.Error("Failed to count users", err)
		return "", domain.User{}, err
	}
	if count == 0 {
		role = RoleAdmin
	}

	newUser := domain.User{
		Username: user.Username,
		Email:    user.Email,
		Password: passwordHash,
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return "", domain.User{}, err
	}

	userIDStr := strconv.FormatUint(uint64(newUser.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, newUser.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	newUser.Password = ""
	return token, newUser, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid username or password")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid username or password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	user.Password = ""
	return token, user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

// GetAllUsers retrieves all users
func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}
