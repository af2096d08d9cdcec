package handlers

import (
	"threadline/internal/domain"
	"threadline/internal/log"
	"threadline/internal/session"
	"threadline/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Sessions *session.Manager
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		log.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}
	pass := c.FormValue("password")

	_, err := h.Sessions.Login(c.UserContext(), sid, domain.Credentials{Email: email, Password: pass})
	if err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	if redirect := c.Query("redirect"); redirect != "" && redirect[0] == '/' {
		return c.Redirect(redirect)
	}
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{"Err": "Enter a valid email address", "CSRFToken": c.Cookies("csrf_")})
	}
	pass := c.FormValue("password")
	if !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Password must be at least 8 characters", "CSRFToken": c.Cookies("csrf_")})
	}

	reg := domain.Registration{
		Email:    email,
		Password: pass,
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
	}
	if _, err := h.Sessions.Auth.Register(c.UserContext(), reg); err != nil {
		log.Security(c, "auth.register.fail", map[string]any{"email": email})
		return c.Status(400).Render("register", fiber.Map{"Err": err.Error(), "CSRFToken": c.Cookies("csrf_")})
	}
	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	return render(c, "login", fiber.Map{"Msg": "Account created. Please sign in."})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	// Only the credential is dropped; the sid cookie stays so the cart
	// survives logout, like it does in a browser.
	_ = h.Sessions.Logout(c.UserContext(), sid)
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
