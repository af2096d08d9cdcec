package handlers

import (
	"threadline/internal/api"
	"threadline/internal/cart"
	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Carts    *cart.Store
	Products *api.Products
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Carts.Get(c.UserContext(), sid)
	if err != nil {
		applog.Error(c, "cart.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "cart", fiber.Map{
		"Items":  items,
		"Totals": cart.Totals(items),
	})
}

// Add snapshots the product from the catalog and merges it into the cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("product_id"))
	if !ok {
		return c.Status(400).SendString("missing product_id")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Products.Get(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "cart.add.product", err, map[string]any{"product_id": id})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	item := domain.CartItem{
		Product:       *p,
		Quantity:      qty,
		SelectedSize:  c.FormValue("size"),
		SelectedColor: c.FormValue("color"),
	}
	if err := h.Carts.Add(c.UserContext(), sid, item); err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"product_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": id, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line's quantity; zero removes the line. Lines are addressed
// by their (product, size, color) key, so a cart that changed under this
// page can at worst no-op.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	key := c.FormValue("key")
	if key == "" {
		return c.Status(400).SendString("missing key")
	}
	qty := 0
	if n, ok := validate.Stock(c.FormValue("qty")); ok {
		qty = n
	}
	if err := h.Carts.UpdateQuantity(c.UserContext(), sid, key, qty); err != nil {
		applog.Error(c, "cart.update", err, map[string]any{"key": key})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	key := c.FormValue("key")
	if key == "" {
		return c.Status(400).SendString("missing key")
	}
	if err := h.Carts.Remove(c.UserContext(), sid, key); err != nil {
		applog.Error(c, "cart.remove", err, map[string]any{"key": key})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	return c.Redirect("/cart")
}
