package order

import (
	"time"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/user"
)

// Order is an immutable point-in-time copy of the customer and the cart.
type Order struct {
	ID       string       `json:"id"`
	Customer user.Profile `json:"customer"`
	Items    []cart.Item  `json:"items"`
	Total    int64        `json:"total"`
	PlacedAt time.Time    `json:"date"`
}

// ShortCode is the last six characters of the id, as shown to customers.
func (o Order) ShortCode() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}
