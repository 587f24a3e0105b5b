// Package handlers implements the HTTP request handlers for the HRMS
// onboarding service. This file covers the candidate-facing token-gated
// flows (profile completion, document upload) and the HR invitation.
package handlers

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/venkatesh481825/HRMS/internal/config"
	"github.com/venkatesh481825/HRMS/internal/middleware"
	"github.com/venkatesh481825/HRMS/internal/security"
	"github.com/venkatesh481825/HRMS/internal/services"
)

// OnboardingHandler handles invitation, profile completion, and document
// upload requests.
type OnboardingHandler struct {
	onboarding *services.OnboardingService
	documents  *services.DocumentService
	uploadDir  string
}

// NewOnboardingHandler creates an OnboardingHandler.
func NewOnboardingHandler(cfg *config.Config, onboarding *services.OnboardingService, documents *services.DocumentService) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding: onboarding,
		documents:  documents,
		uploadDir:  cfg.UploadDir,
	}
}

// InviteCandidate creates or re-invites a candidate and emails the
// onboarding link. A failed email dispatch is reported in the response but
// the candidate and token stand, so HR can simply invite again.
func (h *OnboardingHandler) InviteCandidate(c *fiber.Ctx) error {
	email := c.FormValue("email")
	if err := security.ValidateEmail(email); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.onboarding.Invite(c.Context(), middleware.IdentityFromLocals(c), email)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{
		"message":    fmt.Sprintf("onboarding link sent to %s", email),
		"email_sent": result.MailErr == nil,
	}
	if result.MailErr != nil {
		resp["message"] = "candidate invited, but the onboarding email could not be sent"
	}

	return c.JSON(resp)
}

// ShowProfileForm validates the onboarding link and returns the candidate
// state backing the profile form. Unauthenticated by design; the token is
// the credential.
func (h *OnboardingHandler) ShowProfileForm(c *fiber.Ctx) error {
	candidate, _, err := h.onboarding.ValidateProfileToken(c.Context(), c.Params("token"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"email":  candidate.Email,
		"status": candidate.Status,
	})
}

// CompleteProfile submits the profile form. On success the profile token is
// consumed and the response carries the document upload path so the
// candidate proceeds without waiting for another email.
func (h *OnboardingHandler) CompleteProfile(c *fiber.Ctx) error {
	name := c.FormValue("name")
	phone := c.FormValue("phone")

	if err := security.ValidateName(name); err != nil {
		return badRequest(c, err.Error())
	}
	if err := security.ValidatePhone(phone); err != nil {
		return badRequest(c, err.Error())
	}

	candidate, docToken, err := h.onboarding.CompleteProfile(c.Context(), c.Params("token"), name, phone)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "profile completed successfully",
		"status":     candidate.Status,
		"upload_url": "/documents/upload/" + docToken.Token,
	})
}

// ShowUploadPage validates the upload link and lists the candidate's
// documents so far.
func (h *OnboardingHandler) ShowUploadPage(c *fiber.Ctx) error {
	candidate, docs, err := h.documents.ListForToken(c.Context(), c.Params("token"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"email":     candidate.Email,
		"documents": docs,
	})
}

// UploadDocument stores one multipart file upload as a PENDING document.
// The upload token is not consumed, so the same link serves further uploads
// until it expires.
func (h *OnboardingHandler) UploadDocument(c *fiber.Ctx) error {
	documentType := c.FormValue("document_type")
	if err := security.ValidateDocumentType(documentType); err != nil {
		return badRequest(c, err.Error())
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	// Stored under a random name; the original name is untrusted input.
	storedPath := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, storedPath); err != nil {
		return fail(c, err)
	}

	doc, err := h.documents.Upload(c.Context(), c.Params("token"), documentType, storedPath)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  fmt.Sprintf("%s uploaded successfully", documentType),
		"document": doc,
	})
}
