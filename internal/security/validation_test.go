// Input validation tests.
package security

import (
	"strings"
	"testing"
)

// TestValidateEmail tests email format validation.
func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "jane@example.com", false},
		{"valid email with plus tag", "jane+hr@example.com", false},
		{"empty email", "", true},
		{"missing at sign", "jane.example.com", true},
		{"missing domain", "jane@", true},
		{"spaces inside", "jane doe@example.com", true},
		{"too long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

// TestValidateName tests display name validation.
func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Jane Doe", false},
		{"single word", "Jane", false},
		{"empty name", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestValidatePhone tests phone number validation.
func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"digits only", "5550001111", false},
		{"international format", "+15550001111", false},
		{"empty phone", "", true},
		{"letters", "555CALLME", true},
		{"plus in the middle", "555+0001111", true},
		{"too long", "+123456789012345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
		})
	}
}

// TestValidateDocumentType tests the document type label validation.
func TestValidateDocumentType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"typical label", "ID_CARD", false},
		{"free form", "Degree Certificate", false},
		{"empty", "", true},
		{"whitespace only", "  ", true},
		{"too long", strings.Repeat("x", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocumentType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// TestValidateReason tests the free-text reason validation.
func TestValidateReason(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"typical reason", "doctor appointment", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", 2001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReason(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReason(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
