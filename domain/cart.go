package domain

// Cart is session state, never persisted to postgres. It lives in redis
// keyed by user id and is cleared on checkout.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem keeps the price snapshotted at add-to-cart time.
type CartItem struct {
	ProductID        uint    `json:"product_id"`
	Quantity         int     `json:"quantity"`
	CustomInputValue string  `json:"custom_input_value"`
	Price            float64 `json:"price"`
}

// CartView is the cart joined against live products for rendering.
// Lines whose product no longer exists are skipped.
type CartView struct {
	Items []CartViewItem `json:"items"`
	Total float64        `json:"total"`
}

type CartViewItem struct {
	Product          Product `json:"product"`
	Quantity         int     `json:"quantity"`
	CustomInputValue string  `json:"custom_input_value"`
	Price            float64 `json:"price"`
	Subtotal         float64 `json:"subtotal"`
}
