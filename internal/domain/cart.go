package domain

import "fmt"

// CartItem is one line of the session cart. Product is a snapshot taken at
// add time, not a live reference to the catalog.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	SelectedColor string  `json:"selected_color,omitempty"`
}

// Key identifies a cart line by the (product, size, color) triple. Two adds
// with the same key merge into one line.
func (i CartItem) Key() string {
	return LineKey(i.Product.ID, i.SelectedSize, i.SelectedColor)
}

func LineKey(productID int64, size, color string) string {
	return fmt.Sprintf("%d|%s|%s", productID, size, color)
}

// CartTotals are always derived from the current lines, never stored.
type CartTotals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}
