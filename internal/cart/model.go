package cart

// Item is one product line in the cart. Price is in minor currency units.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageName string `json:"imageName"`
}

// Subtotal is price times quantity.
func (it Item) Subtotal() int64 {
	return it.Price * int64(it.Quantity)
}

// Total sums price*quantity over items. It does not depend on item order.
func Total(items []Item) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

// Clone returns a copy that shares no backing array with items.
func Clone(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return append(make([]Item, 0, len(items)), items...)
}
