package domain

import (
	"errors"
	"strings"
	"testing"

	"org-access-control/internal/platform/apperrors"
)

func TestValidateFields(t *testing.T) {
	testCases := []struct {
		name        string
		orgName     string
		description string
		wantErr     bool
		field       string
	}{
		{"minimal", "A", "", false, ""},
		{"max name", strings.Repeat("n", 50), "", false, ""},
		{"max description", "Acme", strings.Repeat("d", 255), false, ""},
		{"multibyte name within limit", strings.Repeat("é", 50), "", false, ""},
		{"empty name", "", "", true, "name"},
		{"name too long", strings.Repeat("n", 51), "", true, "name"},
		{"description too long", "Acme", strings.Repeat("d", 256), true, "description"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFields(tc.orgName, tc.description)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("ValidateFields: %v", err)
				}
				return
			}
			if !apperrors.IsValidation(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
			var e *apperrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %T, want *apperrors.Error", err)
			}
			if e.Field != tc.field {
				t.Errorf("field = %q, want %q", e.Field, tc.field)
			}
		})
	}
}

func TestOrg_NormalizeThenValidate(t *testing.T) {
	o := &Org{Name: "   ", Description: "  x  "}
	o.Normalize()
	if o.Description != "x" {
		t.Errorf("description = %q, want %q", o.Description, "x")
	}
	if err := o.Validate(); !apperrors.IsValidation(err) {
		t.Errorf("whitespace-only name should fail validation, got %v", err)
	}
}
