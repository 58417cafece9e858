package models

// LineItem is one cart entry. The composite key is
// (product id, size, color); at most one line item exists per key.
type LineItem struct {
	Product  Product `json:"product"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Quantity int     `json:"quantity"`
}

// CartSnapshot is the persisted shape of a session's cart: the ordered line
// items plus the sidebar open/closed flag. It survives a reload under the
// cart-storage namespace.
type CartSnapshot struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

// Request bodies for the cart endpoints.

type AddCartItemRequest struct {
	Product  Product `json:"product" binding:"required"`
	Size     string  `json:"size" binding:"required"`
	Color    string  `json:"color" binding:"required"`
	Quantity int     `json:"quantity"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

// CartTotals is the derived view returned with every cart response.
type CartTotals struct {
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
	RWNPrice   int64   `json:"rwn_price"`
}

type CartResponse struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
	Totals CartTotals `json:"totals"`
}
