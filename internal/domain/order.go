package domain

// Order statuses are assigned by the backend; the client only displays them.
const (
	StatusPending    = "PENDING"
	StatusPaid       = "PAID"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

var statusColors = map[string]string{
	StatusPending:    "yellow",
	StatusPaid:       "blue",
	StatusProcessing: "indigo",
	StatusShipped:    "purple",
	StatusDelivered:  "green",
	StatusCancelled:  "red",
}

// StatusColor maps a status to its badge color, grey for anything unknown.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "grey"
}

type ShippingAddress struct {
	Name         string `json:"shipping_name"`
	AddressLine1 string `json:"shipping_address_line1"`
	AddressLine2 string `json:"shipping_address_line2,omitempty"`
	City         string `json:"shipping_city"`
	State        string `json:"shipping_state"`
	Pincode      string `json:"shipping_pincode"`
	Phone        string `json:"shipping_phone"`
}

type Order struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total_amount"`
	Status    string  `json:"status"`
	ShippingAddress
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// OrderItem is a historical snapshot taken at order creation; later product
// edits do not touch it.
type OrderItem struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductImage  string  `json:"product_image,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	SelectedColor string  `json:"selected_color,omitempty"`
}

type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

type OrderItemCreate struct {
	ProductID     int64  `json:"product_id"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selected_size,omitempty"`
	SelectedColor string `json:"selected_color,omitempty"`
}

type OrderCreate struct {
	Items           []OrderItemCreate `json:"items"`
	ShippingAddress ShippingAddress   `json:"shipping_address"`
}
