// Package validate holds the process-wide go-playground validator used for field rules.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var std = validator.New()

// Var checks value against a validator tag list such as "required,email,max=255" and returns the
// first tag that failed, or "" when value is valid. String lengths are counted in runes.
func Var(value any, tags string) string {
	err := std.Var(value, tags)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return tags
}
