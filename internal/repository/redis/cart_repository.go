package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CatcoinSupport/Game-Mart/domain"

	"github.com/redis/go-redis/v9"
)

// Carts expire after a week of inactivity.
const cartTTL = 7 * 24 * time.Hour

// CartRepository keeps per-user cart session state in redis as JSON.
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{
		client: client,
	}
}

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

// Get returns the user's cart. A missing key is an empty cart.
func (r *CartRepository) Get(ctx context.Context, userID uint) (domain.Cart, error) {
	val, err := r.client.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("failed to get cart from Redis: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, userID uint, cart domain.Cart) error {
	jsonData, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(userID), jsonData, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart in Redis: %w", err)
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
