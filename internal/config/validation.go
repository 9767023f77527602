package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/n2code/docwriter/internal"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// locationFields point to the root document and the documentation root, failing them means nothing can be done.
var locationFields = map[string]bool{
	"MkdocsConfigPath": true,
	"DocRootPath":      true,
}

// Validate checks the struct tags. Missing locations are reported as internal.ErrBackingStoreMissing.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}
	// Return the first validation error with context
	e := validationErrs[0]
	formatted := fmt.Errorf("%s: validation failed on '%s' tag (value: %v)", e.Namespace(), e.Tag(), e.Value())
	if locationFields[e.StructField()] {
		return fmt.Errorf("%w: %w", internal.ErrBackingStoreMissing, formatted)
	}
	return formatted
}
