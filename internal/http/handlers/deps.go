package handlers

import (
	"threadline/internal/api"
	"threadline/internal/cart"
	"threadline/internal/session"
)

type Deps struct {
	ShopHandler  *ShopHandler
	CartHandler  *CartHandler
	OrderHandler *OrderHandler
	AdminHandler *AdminHandler
}

func NewDeps(client *api.Client, sessions *session.Manager, carts *cart.Store) *Deps {
	products := &api.Products{C: client}
	orders := &api.Orders{C: client}
	admin := &api.Admin{C: client}

	return &Deps{
		ShopHandler:  &ShopHandler{Products: products},
		CartHandler:  &CartHandler{Carts: carts, Products: products},
		OrderHandler: &OrderHandler{Carts: carts, Orders: orders},
		AdminHandler: &AdminHandler{Admin: admin, Products: products},
	}
}
