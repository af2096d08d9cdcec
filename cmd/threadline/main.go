package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"

	"threadline/internal/api"
	"threadline/internal/cart"
	"threadline/internal/config"
	"threadline/internal/domain"
	"threadline/internal/http/handlers"
	applog "threadline/internal/log"
	"threadline/internal/session"
	"threadline/internal/storage"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Session slot storage: sqlite by default, redis when configured
	var kv storage.Store
	switch cfg.SessionBackend {
	case "redis":
		kv = storage.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	default:
		s, err := storage.OpenSQLite(cfg.SessionDSN)
		if err != nil {
			log.Fatal(err)
		}
		kv = s
	}

	// Token slot is sealed at rest when a secret is configured
	tokenKV := kv
	if cfg.SessionSecret != "" {
		tokenKV = storage.NewSealed(kv, cfg.SessionSecret)
	} else {
		log.Printf("[warn] SESSION_SECRET empty; tokens stored unsealed")
	}

	// Backend wiring
	client := api.NewClient(cfg.APIBaseURL)
	tokens := session.NewTokenStore(tokenKV)
	auth := &api.Auth{C: client, Tokens: tokens}
	sessions := session.NewManager(auth, tokens)
	carts := cart.NewStore(kv)

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("statusColor", domain.StatusColor)
	engine.AddFunc("join", func(ss []string) string { return strings.Join(ss, ", ") })
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Resolve the session: bearer token onto the request context, user and
	// cart badge count into locals for templates.
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
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(client, sessions, carts)
	authH := &handlers.AuthHandler{Sessions: sessions}

	// Shop
	app.Get("/", deps.ShopHandler.Home)
	app.Get("/products", deps.ShopHandler.List)
	app.Get("/products/:id", deps.ShopHandler.Detail)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)

	// Checkout & orders (account pages)
	app.Get("/checkout", handlers.RequireUser(sessions), deps.OrderHandler.Checkout)
	app.Post("/orders", handlers.RequireUser(sessions), deps.OrderHandler.Place)
	app.Get("/orders", handlers.RequireUser(sessions), deps.OrderHandler.History)
	app.Get("/orders/:id", handlers.RequireUser(sessions), deps.OrderHandler.View)

	// Auth (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Get("/register", authH.RegisterForm)
	app.Post("/register", authH.Register)
	app.Post("/logout", authH.Logout)

	// Admin console
	admin := app.Group("/admin", handlers.RequireAdmin(sessions))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/products", deps.AdminHandler.ProductsPage)
	admin.Get("/products/new", deps.AdminHandler.NewProductForm)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Get("/products/:id/edit", deps.AdminHandler.EditProductForm)
	admin.Post("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/orders", deps.AdminHandler.OrdersPage)
	admin.Get("/orders/:id", deps.AdminHandler.OrderPage)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
