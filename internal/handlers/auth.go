// Package handlers implements the HTTP request handlers for the HRMS
// onboarding service. This file handles login, logout, and the post-login
// role redirect.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/venkatesh481825/HRMS/internal/models"
	"github.com/venkatesh481825/HRMS/internal/services"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	store       *session.Store
	authService *services.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{
		store:       store,
		authService: services.NewAuthService(),
	}
}

// Login authenticates form credentials and creates a session. On success it
// redirects to the role's landing path: the HR surface for HR-capable roles,
// the employee surface for everyone else.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	account, err := h.authService.Authenticate(c.Context(), username, password)
	if err != nil {
		return fail(c, err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return fail(c, err)
	}

	sess.Set("user_id", account.ID)
	sess.Set("user_role", account.Role)
	sess.Set("user_name", account.FirstName)
	if err := sess.Save(); err != nil {
		return fail(c, err)
	}

	return c.Redirect(models.RedirectForRole(account.Role))
}

// Logout destroys the session and returns to the landing page.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}

	return c.Redirect("/")
}
