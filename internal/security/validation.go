// Package security provides input validation and rate limiting used by the
// HTTP layer. All validation errors are safe to show to users.
package security

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidateEmail validates email address format according to RFC 5322.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if len(email) > 255 {
		return fmt.Errorf("email must be less than 255 characters")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidateName validates a candidate or employee display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}

	if len(name) > 100 {
		return fmt.Errorf("name must be less than 100 characters")
	}

	return nil
}

// ValidatePhone validates a candidate phone number: digits with an optional
// leading plus, length bounded to fit the stored column.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("phone is required")
	}

	if len(phone) > 15 {
		return fmt.Errorf("phone must be less than 15 characters")
	}

	for i, r := range phone {
		if r == '+' && i == 0 {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("phone may contain only digits")
		}
	}

	return nil
}

// ValidateDocumentType validates the free-form document type label.
func ValidateDocumentType(documentType string) error {
	documentType = strings.TrimSpace(documentType)
	if documentType == "" {
		return fmt.Errorf("document type is required")
	}

	if len(documentType) > 100 {
		return fmt.Errorf("document type must be less than 100 characters")
	}

	return nil
}

// ValidateReason validates the free-text reason on permission and
// regularization requests.
func ValidateReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("reason is required")
	}

	if len(reason) > 2000 {
		return fmt.Errorf("reason must be less than 2000 characters")
	}

	return nil
}
