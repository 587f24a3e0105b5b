// Package handlers implements the HTTP request handlers for the HRMS
// onboarding service. This file maps service-layer errors onto HTTP
// responses.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/venkatesh481825/HRMS/internal/services"
)

// fail writes a JSON error response with the status the service error maps
// to. Unexpected errors are logged and hidden behind a generic message.
func fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(status).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrTokenNotFound),
		errors.Is(err, services.ErrCandidateNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrAttendanceNotFound),
		errors.Is(err, services.ErrPermissionNotFound),
		errors.Is(err, services.ErrRegularizationNotFound),
		errors.Is(err, services.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrTokenExpired):
		return fiber.StatusGone
	case errors.Is(err, services.ErrAlreadyOnboarded),
		errors.Is(err, services.ErrNotVerified):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidRange):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// badRequest writes a 400 with a user-safe validation message.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
