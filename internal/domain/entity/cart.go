package entity

// Cart is the server-authoritative collection of line items a session intends
// to purchase. Aggregate fields are carried verbatim from the last server
// response; the client never derives them independently.
type Cart struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TotalItems  int        `json:"totalItems"`
	TotalAmount float64    `json:"totalAmount"`
}

// CartItem is one product-and-quantity pairing within a cart.
// Quantity is always a positive integer; a mutation that would drive it to
// zero or below removes the line item instead.
type CartItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Item returns the line item with the given ID, or nil if absent.
func (c *Cart) Item(itemID string) *CartItem {
	if c == nil {
		return nil
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}

	return nil
}
