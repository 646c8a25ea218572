package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vvka-141/dwgate/internal/params"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// identifierPattern accepts plain SQL identifiers, optionally dot-qualified.
// Table and column names are interpolated into check queries, so anything
// else (quotes, whitespace, semicolons) is rejected.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*(\.[A-Za-z_][A-Za-z0-9_$]*)*$`)

// IsIdentifier reports whether s is a plain, optionally qualified SQL identifier.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return IsIdentifier(fl.Field().String())
	})
	_ = v.RegisterValidation("placeholder", func(fl validator.FieldLevel) bool {
		key := fl.Field().String()
		return params.IsPlaceholderKey(key) && !params.IsBuiltIn(key)
	})

	return v
}

// validateDocument runs struct validation and converts every field problem
// into one error wrapping dwgate.ErrInvalidConfig.
func validateDocument(v *validator.Validate, path string, doc any) error {
	err := v.Struct(doc)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("%s: %v: %w", path, err, dwgate.ErrInvalidConfig)
	}

	problems := make([]error, 0, len(valErrs))
	for _, fe := range valErrs {
		problems = append(problems, errors.New(describeFieldError(fe)))
	}

	return fmt.Errorf("%s is invalid: %w: %w", path, dwgate.ErrInvalidConfig, errors.Join(problems...))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "identifier":
		return fmt.Sprintf("%s: %q is not a valid SQL identifier", field, fe.Value())
	case "placeholder":
		return fmt.Sprintf("%s: %q must be an UPPER_SNAKE_CASE key other than %s, %s and %s",
			field, fe.Value(), dwgate.PlaceholderDatabase, dwgate.PlaceholderWarehouse, dwgate.PlaceholderRole)
	case "min":
		return fmt.Sprintf("%s must list at least %s entry", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
