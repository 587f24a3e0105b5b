// Package middleware provides HTTP middleware for authentication,
// authorization, and baseline security headers.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/venkatesh481825/HRMS/internal/security"
)

// SecureHeaders sets baseline security response headers on every request.
func SecureHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("Cache-Control", "no-store")

		return c.Next()
	}
}

// RequestLogger logs each request with method, path, status, and latency.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logrus.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  c.Response().StatusCode(),
			"ip":      c.IP(),
			"latency": time.Since(start).String(),
		}).Info("request")

		return err
	}
}

// RateLimit rejects requests from clients that exceed the limiter's allowance.
// The identifier is the client IP; the endpoint label only feeds the log.
func RateLimit(limiter *security.RateLimiter, endpoint string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow(c.IP()) {
			logrus.WithFields(logrus.Fields{
				"ip":       c.IP(),
				"endpoint": endpoint,
			}).Warn("rate limit exceeded")

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, try again later",
			})
		}

		return c.Next()
	}
}
