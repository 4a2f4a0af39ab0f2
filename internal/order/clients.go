package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/foodcart/internal/cart"
)

// Carts is the part of the cart manager an order needs.
type Carts interface {
	Checkout(ctx context.Context, fn func(items []cart.Item) error) error
	ClearIf(ctx context.Context, keep func(items []cart.Item) bool) (bool, error)
}

// NewID returns a time-ordered unique order id (UUIDv7).
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func now() time.Time {
	return time.Now().UTC()
}
