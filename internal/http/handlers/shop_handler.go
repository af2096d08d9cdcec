package handlers

import (
	"strconv"
	"strings"

	"threadline/internal/api"
	"threadline/internal/domain"
	applog "threadline/internal/log"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Products *api.Products
}

// Home shows category links and the most popular products.
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	list, err := h.Products.List(c.UserContext(), domain.ProductFilters{
		Page: 1, PageSize: 8, Sort: domain.SortPopularity,
	})
	if err != nil {
		applog.Error(c, "home.load", err, nil)
		return c.Status(502).Render("notfound", fiber.Map{"Message": "Could not load the shop. Please try again."})
	}
	return render(c, "home", fiber.Map{
		"Categories": domain.Categories,
		"Featured":   list.Products,
	})
}

// List is the shop page: filters, sorting, pagination, search.
func (h *ShopHandler) List(c *fiber.Ctx) error {
	sort, ok := domain.ParseSortOrder(c.Query("sort_by"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "sort_by", "value": c.Query("sort_by")})
		sort = domain.SortNewest
	}
	if sort == "" {
		sort = domain.SortNewest
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	f := domain.ProductFilters{
		Page:     page,
		PageSize: 12,
		Category: strings.TrimSpace(c.Query("category")),
		Size:     strings.TrimSpace(c.Query("size")),
		Color:    strings.TrimSpace(c.Query("color")),
		Sort:     sort,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if v, ok := validate.Price(c.Query("min_price")); ok && c.Query("min_price") != "" {
		f.MinPrice = &v
	}
	if v, ok := validate.Price(c.Query("max_price")); ok && c.Query("max_price") != "" {
		f.MaxPrice = &v
	}

	list, err := h.Products.List(c.UserContext(), f)
	if err != nil {
		applog.Error(c, "products.list", err, nil)
		return c.Status(502).Render("notfound", fiber.Map{"Message": "Could not load products. Please try again."})
	}
	return render(c, "products", fiber.Map{
		"Products":   list.Products,
		"Total":      list.Total,
		"Page":       list.Page,
		"TotalPages": list.TotalPages,
		"Filters":    f,
		"Categories": domain.Categories,
		"Sizes":      domain.SizeNames,
		"Colors":     domain.ColorNames,
	})
}

// Detail renders one product with its size/color pickers.
func (h *ShopHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Products.Get(c.UserContext(), id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	return render(c, "product", fiber.Map{"P": p})
}
