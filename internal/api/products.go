package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"threadline/internal/domain"
)

type Products struct {
	C *Client
}

// List fetches a filtered, paginated product page. Unset filters are left
// out of the query entirely; the sort order is validated here so an
// arbitrary string can never reach the wire.
func (p *Products) List(ctx context.Context, f domain.ProductFilters) (*domain.ProductList, error) {
	if _, ok := domain.ParseSortOrder(string(f.Sort)); !ok {
		return nil, &Error{Message: fmt.Sprintf("invalid sort order %q", f.Sort)}
	}

	q := url.Values{}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(f.PageSize))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Size != "" {
		q.Set("size", f.Size)
	}
	if f.Color != "" {
		q.Set("color", f.Color)
	}
	if f.Sort != "" {
		q.Set("sort_by", string(f.Sort))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	var out domain.ProductList
	if err := p.C.Get(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *Products) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := p.C.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
