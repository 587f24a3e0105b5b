// Package handlers implements the HTTP request handlers for the HRMS
// onboarding service. This file covers the HR surface: the review dashboard,
// document review, credential issuance, and attendance request approvals.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/venkatesh481825/HRMS/internal/middleware"
	"github.com/venkatesh481825/HRMS/internal/services"
)

// HRHandler handles the HR-only HTTP requests.
type HRHandler struct {
	documents   *services.DocumentService
	credentials *services.CredentialService
	attendance  *services.AttendanceService
}

// NewHRHandler creates an HRHandler.
func NewHRHandler(documents *services.DocumentService, credentials *services.CredentialService, attendance *services.AttendanceService) *HRHandler {
	return &HRHandler{
		documents:   documents,
		credentials: credentials,
		attendance:  attendance,
	}
}

// Dashboard returns the review screen state: candidates with live document
// counts and readiness flags, plus the pending-document queue. Counts are
// recomputed on every call.
func (h *HRHandler) Dashboard(c *fiber.Ctx) error {
	overview, pending, err := h.documents.Dashboard(c.Context(), middleware.IdentityFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"candidates":        overview,
		"pending_documents": pending,
	})
}

// ReviewDocument applies a verify or reupload decision to one document.
func (h *HRHandler) ReviewDocument(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid document id")
	}

	action := c.FormValue("action")
	if action != services.ReviewVerify && action != services.ReviewRequestReupload {
		return badRequest(c, "action must be verify or reupload")
	}

	doc, err := h.documents.Review(c.Context(), middleware.IdentityFromLocals(c), id, action)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"document": doc})
}

// IssueCredentials triggers credential issuance for a fully verified
// candidate. POST-only by route registration; the derived password appears
// only in the outbound email, never in this response.
func (h *HRHandler) IssueCredentials(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid candidate id")
	}

	result, err := h.credentials.IssueOrReset(c.Context(), middleware.IdentityFromLocals(c), id)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{
		"username":   result.Credentials.Username,
		"email_sent": result.MailErr == nil,
	}
	if result.MailErr != nil {
		resp["message"] = "credentials issued, but the email could not be sent"
	}

	return c.JSON(resp)
}

// PendingRequests returns the permission and regularization approval queues.
func (h *HRHandler) PendingRequests(c *fiber.Ctx) error {
	permissions, regularizations, err := h.attendance.PendingRequests(c.Context(), middleware.IdentityFromLocals(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"permissions":     permissions,
		"regularizations": regularizations,
	})
}

// ReviewPermission approves or rejects a permission request.
func (h *HRHandler) ReviewPermission(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid permission id")
	}

	action := c.FormValue("action")
	if action != "approve" && action != "reject" {
		return badRequest(c, "action must be approve or reject")
	}

	permission, err := h.attendance.ReviewPermission(c.Context(), middleware.IdentityFromLocals(c), id, action == "approve")
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"permission": permission})
}

// ApproveRegularization approves a regularization request, amending the
// linked attendance row in the same transaction.
func (h *HRHandler) ApproveRegularization(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid regularization id")
	}

	reg, err := h.attendance.ApproveRegularization(c.Context(), middleware.IdentityFromLocals(c), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"regularization": reg})
}
