package domain

// Product as served by the catalog backend. The client never mutates one
// outside the admin endpoints; cart lines copy the fields they need at add time.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	IsActive    bool     `json:"is_active"`
	Popularity  int      `json:"popularity"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// FirstImage is what product cards and cart rows show.
func (p Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

type ProductList struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// SortOrder is the closed set of orderings the catalog accepts.
type SortOrder string

const (
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
	SortNewest     SortOrder = "newest"
	SortPopularity SortOrder = "popularity"
)

// ParseSortOrder validates a raw sort value. Empty means "backend default".
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case "", SortNewest, SortPriceAsc, SortPriceDesc, SortPopularity:
		return SortOrder(s), true
	}
	return "", false
}

// ProductFilters mirrors the /products query surface. Zero fields are
// omitted from the request entirely.
type ProductFilters struct {
	Page     int
	PageSize int
	Category string
	MinPrice *float64
	MaxPrice *float64
	Size     string
	Color    string
	Sort     SortOrder
	Search   string
}

type ProductCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
}

// ProductUpdate carries only the fields the admin form actually changed.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Images      []string `json:"images,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// Fixed vocabularies used by the shop filter bar and the admin form.
var (
	Categories = []string{"T-Shirts", "Shirts", "Jeans", "Dresses", "Jackets"}
	SizeNames  = []string{"XS", "S", "M", "L", "XL", "XXL", "28", "30", "32", "34", "36", "38"}
	ColorNames = []string{"Black", "White", "Blue", "Red", "Green", "Grey", "Navy", "Brown"}
)
