package api

import (
	"context"
	"fmt"

	"threadline/internal/domain"
)

// Admin maps the /admin endpoints. Admin-ness is enforced by the backend
// from the bearer token; this layer adds nothing.
type Admin struct {
	C *Client
}

func (a *Admin) CreateProduct(ctx context.Context, p domain.ProductCreate) (*domain.Product, error) {
	var out domain.Product
	if err := a.C.Post(ctx, "/admin/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Admin) UpdateProduct(ctx context.Context, id int64, p domain.ProductUpdate) (*domain.Product, error) {
	var out domain.Product
	if err := a.C.Put(ctx, fmt.Sprintf("/admin/products/%d", id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Admin) DeleteProduct(ctx context.Context, id int64) error {
	return a.C.Delete(ctx, fmt.Sprintf("/admin/products/%d", id))
}

func (a *Admin) ListOrders(ctx context.Context) (*domain.OrderList, error) {
	var out domain.OrderList
	if err := a.C.Get(ctx, "/admin/orders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *Admin) GetOrder(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	var out domain.OrderDetail
	if err := a.C.Get(ctx, fmt.Sprintf("/admin/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
