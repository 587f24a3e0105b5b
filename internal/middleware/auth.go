// Package middleware provides HTTP middleware for authentication,
// authorization, and baseline security headers.
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/venkatesh481825/HRMS/internal/models"
)

// AuthRequired ensures the request carries an authenticated session,
// redirecting to login otherwise. It copies the session identity into
// context locals so handlers can build the explicit models.Identity they
// pass into the service layer.
//
// Context Locals Set:
//   - user_id: authenticated account id (int)
//   - user_role: account role string
//   - user_name: display name (string)
func AuthRequired(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login")
		}

		userID := sess.Get("user_id")
		if userID == nil {
			return c.Redirect("/login")
		}

		c.Locals("user_id", userID)
		c.Locals("user_role", sess.Get("user_role"))
		c.Locals("user_name", sess.Get("user_name"))

		return c.Next()
	}
}

// HROnly restricts a route to HR-capable roles. Must be chained after
// AuthRequired, which sets user_role.
func HROnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !models.IsHR(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "HR access only"})
		}

		return c.Next()
	}
}

// ApproverOnly restricts a route to roles that may approve attendance
// requests. Must be chained after AuthRequired.
func ApproverOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !models.CanApprove(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "approver access only"})
		}

		return c.Next()
	}
}

// IdentityFromLocals builds the explicit caller identity handed to the
// service layer from the locals AuthRequired set.
func IdentityFromLocals(c *fiber.Ctx) models.Identity {
	id, _ := c.Locals("user_id").(int)
	role, _ := c.Locals("user_role").(string)
	name, _ := c.Locals("user_name").(string)

	return models.Identity{UserID: id, Role: role, Name: name}
}
