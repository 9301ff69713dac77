package domain

import (
	"strconv"
	"strings"
	"time"

	"org-access-control/internal/platform/apperrors"
	"org-access-control/internal/platform/validate"
)

const (
	// NameMaxLen is the maximum organization name length in characters.
	NameMaxLen = 50
	// DescriptionMaxLen is the maximum organization description length in characters.
	DescriptionMaxLen = 255
)

// Org represents an organization (tenant).
type Org struct {
	ID          string
	Name        string
	Description string // empty when not set
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize trims surrounding whitespace from the mutable fields.
func (o *Org) Normalize() {
	o.Name = strings.TrimSpace(o.Name)
	o.Description = strings.TrimSpace(o.Description)
}

// Validate checks field constraints. Returns a validation error describing the first failure.
func (o *Org) Validate() error {
	return ValidateFields(o.Name, o.Description)
}

// Validator tags for the mutable fields; string lengths are counted in characters.
var (
	nameRules        = "required,max=" + strconv.Itoa(NameMaxLen)
	descriptionRules = "max=" + strconv.Itoa(DescriptionMaxLen)
)

// ValidateFields checks the name (1-50 characters) and description (at most 255 characters).
func ValidateFields(name, description string) error {
	switch validate.Var(name, nameRules) {
	case "":
	case "required":
		return apperrors.Validation("name", "name is required")
	default:
		return apperrors.Validation("name", "name must be at most 50 characters")
	}
	if validate.Var(description, descriptionRules) != "" {
		return apperrors.Validation("description", "description must be at most 255 characters")
	}
	return nil
}
