package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"threadline/internal/api"
	"threadline/internal/cart"
	"threadline/internal/domain"
	"threadline/internal/http/handlers"
	"threadline/internal/session"
	"threadline/internal/storage"
)

// fakeBackend is a minimal stand-in for the remote REST API: one product,
// one user, order creation that echoes totals back.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	product := domain.Product{
		ID: 1, Name: "Crewneck Tee", Description: "Plain cotton tee", Price: 500,
		Category: "T-Shirts", Sizes: []string{"S", "M", "L"}, Colors: []string{"Black"},
		Images: []string{}, Stock: 10, IsActive: true,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.ProductList{
			Products: []domain.Product{product}, Total: 1, Page: 1, PageSize: 12, TotalPages: 1,
		})
	})
	mux.HandleFunc("GET /products/1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(product)
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer tok-alice":
			_ = json.NewEncoder(w).Encode(domain.User{ID: 1, Email: "alice@threadline.test", FullName: "Alice", IsActive: true})
		case "Bearer tok-admin":
			_ = json.NewEncoder(w).Encode(domain.User{ID: 2, Email: "admin@threadline.test", IsAdmin: true, IsActive: true})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Could not validate credentials"}`))
		}
	})
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Not authenticated"}`))
			return
		}
		var req domain.OrderCreate
		_ = json.NewDecoder(r.Body).Decode(&req)
		var sub float64
		for _, it := range req.Items {
			sub += 500 * float64(it.Quantity)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.OrderDetail{
			Order: domain.Order{ID: 7, Subtotal: sub, Tax: sub * 0.18, Total: sub * 1.18, Status: domain.StatusPaid},
		})
	})
	return httptest.NewServer(mux)
}

type testEnv struct {
	app      *fiber.App
	sessions *session.Manager
	carts    *cart.Store
}

func newTestEnv(t *testing.T, backendURL string) *testEnv {
	t.Helper()
	kv, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	client := api.NewClient(backendURL)
	tokens := session.NewTokenStore(kv)
	sessions := session.NewManager(&api.Auth{C: client, Tokens: tokens}, tokens)
	carts := cart.NewStore(kv)

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("statusColor", domain.StatusColor)
	engine.AddFunc("join", func(ss []string) string { return strings.Join(ss, ", ") })

	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if tok, ok := sessions.Token(c.UserContext(), sid); ok {
				c.SetUserContext(api.WithToken(c.UserContext(), tok))
			}
			if u, err := sessions.CurrentUser(c.UserContext(), sid); err == nil && u != nil {
				c.Locals("user", u)
			}
			if n, err := carts.Count(c.UserContext(), sid); err == nil && n > 0 {
				c.Locals("cartCount", n)
			}
		}
		return c.Next()
	})

	deps := handlers.NewDeps(client, sessions, carts)
	app.Get("/", deps.ShopHandler.Home)
	app.Get("/products", deps.ShopHandler.List)
	app.Get("/products/:id", deps.ShopHandler.Detail)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Get("/checkout", handlers.RequireUser(sessions), deps.OrderHandler.Checkout)
	app.Post("/orders", handlers.RequireUser(sessions), deps.OrderHandler.Place)
	app.Get("/orders", handlers.RequireUser(sessions), deps.OrderHandler.History)
	app.Get("/orders/:id", handlers.RequireUser(sessions), deps.OrderHandler.View)
	admin := app.Group("/admin", handlers.RequireAdmin(sessions))
	admin.Get("/", deps.AdminHandler.Dashboard)

	return &testEnv{app: app, sessions: sessions, carts: carts}
}

func withSID(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}

func formReq(path, body string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
