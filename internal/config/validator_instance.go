package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	glinterrors "github.com/glintkit/glint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColourPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	themeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_colour", func(fl validator.FieldLevel) bool {
			return hexColourPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// translateValidatorError converts validator failures into the package's
// ValidationError type, reporting the first offending field.
func translateValidatorError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return glinterrors.NewValidationError("", err.Error(), err)
	}

	first := fieldErrors[0]
	field := strings.ToLower(strings.TrimPrefix(first.Namespace(), "ThemeFile."))
	message := fmt.Sprintf("failed %q constraint", first.Tag())
	return glinterrors.NewValidationError(field, message, err)
}
