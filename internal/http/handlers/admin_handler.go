package handlers

import (
	"threadline/internal/api"
	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Admin    *api.Admin
	Products *api.Products
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{})
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	page := 1
	if n, ok := validate.Stock(c.Query("page")); ok && n > 0 {
		page = n
	}
	list, err := h.Products.List(c.UserContext(), domain.ProductFilters{
		Page: page, PageSize: 20, Sort: domain.SortNewest,
	})
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(502).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{
		"Products": list.Products, "Page": list.Page, "TotalPages": list.TotalPages,
	})
}

// GET /admin/products/new
func (h *AdminHandler) NewProductForm(c *fiber.Ctx) error {
	return render(c, "admin_product_form", fiber.Map{
		"Categories": domain.Categories, "Err": "",
	})
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	pc, msg := productCreateFromForm(c)
	if msg != "" {
		return c.Status(400).Render("admin_product_form", fiber.Map{
			"Categories": domain.Categories, "Err": msg, "CSRFToken": c.Cookies("csrf_"),
		})
	}
	p, err := h.Admin.CreateProduct(c.UserContext(), pc)
	if err != nil {
		applog.Error(c, "admin.products.create.fail", err, nil)
		return c.Status(400).Render("admin_product_form", fiber.Map{
			"Categories": domain.Categories, "Err": err.Error(), "CSRFToken": c.Cookies("csrf_"),
		})
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": p.ID})
	return c.Redirect("/admin/products")
}

// GET /admin/products/:id/edit
func (h *AdminHandler) EditProductForm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	p, err := h.Products.Get(c.UserContext(), id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	return render(c, "admin_product_form", fiber.Map{
		"Categories": domain.Categories, "P": p, "Err": "",
	})
}

// POST /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	pc, msg := productCreateFromForm(c)
	if msg != "" {
		return c.Status(400).SendString(msg)
	}
	active := c.FormValue("is_active") != ""
	upd := domain.ProductUpdate{
		Name:        &pc.Name,
		Description: &pc.Description,
		Price:       &pc.Price,
		Category:    &pc.Category,
		Sizes:       pc.Sizes,
		Colors:      pc.Colors,
		Images:      pc.Images,
		Stock:       &pc.Stock,
		IsActive:    &active,
	}
	if _, err := h.Admin.UpdateProduct(c.UserContext(), id, upd); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not update product")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Product not found"})
	}
	if err := h.Admin.DeleteProduct(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	list, err := h.Admin.ListOrders(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(502).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": list.Orders, "Total": list.Total})
}

// GET /admin/orders/:id
func (h *AdminHandler) OrderPage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	o, err := h.Admin.GetOrder(c.UserContext(), id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "admin_order", fiber.Map{
		"Order":       o,
		"StatusColor": domain.StatusColor(o.Status),
	})
}

func productCreateFromForm(c *fiber.Ctx) (domain.ProductCreate, string) {
	var pc domain.ProductCreate
	pc.Name = c.FormValue("name")
	if pc.Name == "" {
		return pc, "Name is required"
	}
	price, ok := validate.Price(c.FormValue("price"))
	if !ok {
		return pc, "Enter a valid price"
	}
	stock, ok := validate.Stock(c.FormValue("stock"))
	if !ok {
		return pc, "Enter a valid stock count"
	}
	pc.Price = price
	pc.Stock = stock
	pc.Description = c.FormValue("description")
	pc.Category = c.FormValue("category")
	pc.Sizes = validate.CSVList(c.FormValue("sizes"))
	pc.Colors = validate.CSVList(c.FormValue("colors"))
	pc.Images = validate.CSVList(c.FormValue("images"))
	return pc, ""
}
