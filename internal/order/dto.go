package order

import (
	"time"

	"github.com/MikeMC777/foodcart/internal/cart"
)

// OrderResponse payload of a placed order.
// swagger:model OrderResponse
type OrderResponse struct {
	ID       string              `json:"id"        example:"01928c7e-3b1a-7c4e-9d1f-6a2b3c4d5e6f"`
	Code     string              `json:"code"      example:"4d5e6f"`
	Account  string              `json:"account"   example:"lan"`
	Phone    string              `json:"phone"     example:"0901234567"`
	Address  string              `json:"address"   example:"123 Main St"`
	Items    []cart.ItemResponse `json:"items"`
	Total    string              `json:"total"     example:"50000"`
	PlacedAt time.Time           `json:"placed_at"`
}

// ListResponse the order history, newest first.
// swagger:model OrderListResponse
type ListResponse struct {
	Items []OrderResponse `json:"items"`
}

func ToResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:       o.ID,
		Code:     o.ShortCode(),
		Account:  o.Customer.Account,
		Phone:    o.Customer.Phone,
		Address:  o.Customer.Address,
		Items:    cart.ToItemResponses(o.Items),
		Total:    cart.Money(o.Total),
		PlacedAt: o.PlacedAt,
	}
}

func ToListResponse(orders []Order) ListResponse {
	out := ListResponse{Items: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		out.Items = append(out.Items, ToResponse(o))
	}
	return out
}
