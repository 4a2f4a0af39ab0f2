package cart

import "github.com/shopspring/decimal"

// AddItemRequest payload for adding one unit of a catalog product.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ProductID string `json:"product_id" example:"1"`
}

// ItemResponse one cart or order line. Amounts are decimal strings in minor
// currency units.
// swagger:model ItemResponse
type ItemResponse struct {
	ID        string `json:"id"         example:"1"`
	Name      string `json:"name"       example:"Chuối"`
	Price     string `json:"price"      example:"15000"`
	Quantity  int    `json:"quantity"   example:"2"`
	Subtotal  string `json:"subtotal"   example:"30000"`
	ImageName string `json:"image_name" example:"chuoi.jpeg"`
}

// CartResponse the cart with its total.
// swagger:model CartResponse
type CartResponse struct {
	Items []ItemResponse `json:"items"`
	Total string         `json:"total" example:"50000"`
}

// Money renders minor currency units as a decimal string.
func Money(v int64) string {
	return decimal.NewFromInt(v).String()
}

func ToItemResponses(items []Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			ID:        it.ID,
			Name:      it.Name,
			Price:     Money(it.Price),
			Quantity:  it.Quantity,
			Subtotal:  Money(it.Subtotal()),
			ImageName: it.ImageName,
		})
	}
	return out
}

func ToResponse(items []Item) CartResponse {
	return CartResponse{Items: ToItemResponses(items), Total: Money(Total(items))}
}
