package handlers

import (
	"strconv"

	"threadline/internal/api"
	"threadline/internal/cart"
	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Carts  *cart.Store
	Orders *api.Orders
}

// Checkout shows the address form, prefilled from the account where we can.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Carts.Get(c.UserContext(), sid)
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	if len(items) == 0 {
		return c.Redirect("/cart")
	}
	data := fiber.Map{"Items": items, "Totals": cart.Totals(items), "Err": ""}
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		data["PrefillName"] = u.FullName
		data["PrefillPhone"] = u.Phone
	}
	return render(c, "checkout", data)
}

// Place turns the cart into an order. The backend owns pricing, stock and
// variant checks; a rejection comes back as an inline form error.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Carts.Get(c.UserContext(), sid)
	if err != nil || len(items) == 0 {
		return c.Redirect("/cart")
	}

	addr, msg := shippingAddressFromForm(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": "shipping"})
		return c.Status(400).Render("checkout", fiber.Map{
			"Items": items, "Totals": cart.Totals(items), "Err": msg, "CSRFToken": c.Cookies("csrf_"),
		})
	}

	req := domain.OrderCreate{ShippingAddress: addr}
	for _, it := range items {
		req.Items = append(req.Items, domain.OrderItemCreate{
			ProductID:     it.Product.ID,
			Quantity:      it.Quantity,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
		})
	}

	order, err := h.Orders.Create(c.UserContext(), req)
	if err != nil {
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(400).Render("checkout", fiber.Map{
			"Items": items, "Totals": cart.Totals(items), "Err": err.Error(), "CSRFToken": c.Cookies("csrf_"),
		})
	}

	if err := h.Carts.Clear(c.UserContext(), sid); err != nil {
		applog.Warn(c, "order.cart.clear", err, map[string]any{"order_id": order.ID})
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": order.ID, "total": order.Total})
	return c.Redirect(orderPath(order.ID))
}

// History lists the current user's orders.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	list, err := h.Orders.List(c.UserContext())
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(502).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "orders", fiber.Map{"Orders": list.Orders, "Total": list.Total})
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	o, err := h.Orders.Get(c.UserContext(), id)
	if err != nil {
		// The backend scopes orders to the caller, so "someone else's order"
		// and "no such order" look the same here.
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{
		"Order":       o,
		"StatusColor": domain.StatusColor(o.Status),
	})
}

func orderPath(id int64) string {
	return "/orders/" + strconv.FormatInt(id, 10)
}

func shippingAddressFromForm(c *fiber.Ctx) (domain.ShippingAddress, string) {
	addr := domain.ShippingAddress{
		Name:         c.FormValue("shipping_name"),
		AddressLine1: c.FormValue("shipping_address_line1"),
		AddressLine2: c.FormValue("shipping_address_line2"),
		City:         c.FormValue("shipping_city"),
		State:        c.FormValue("shipping_state"),
	}
	if addr.Name == "" || addr.AddressLine1 == "" || addr.City == "" || addr.State == "" {
		return addr, "Please fill in all required fields"
	}
	pin, ok := validate.Pincode(c.FormValue("shipping_pincode"))
	if !ok {
		return addr, "Enter a valid pincode"
	}
	phone, ok := validate.Phone(c.FormValue("shipping_phone"))
	if !ok {
		return addr, "Enter a valid phone number"
	}
	addr.Pincode = pin
	addr.Phone = phone
	return addr, ""
}
