package api

import (
	"context"
	"fmt"

	"threadline/internal/domain"
)

type Orders struct {
	C *Client
}

func (o *Orders) Create(ctx context.Context, req domain.OrderCreate) (*domain.OrderDetail, error) {
	var out domain.OrderDetail
	if err := o.C.Post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Orders) List(ctx context.Context) (*domain.OrderList, error) {
	var out domain.OrderList
	if err := o.C.Get(ctx, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Orders) Get(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	var out domain.OrderDetail
	if err := o.C.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
