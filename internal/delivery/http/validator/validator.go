// Package validator adapts go-playground/validator to Echo's Validator
// interface and to the unified schema error envelope.
package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"

	domainerrors "kda/internal/domain/errors"
	"kda/internal/errors"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and converts violations into
// the schema error carrying one issue per failed field.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validation failed")
	}

	issues := make([]domainerrors.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, domainerrors.ValidationIssue{
			Path:    strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}

	return domainerrors.NewValidationError(issues...)
}

// messageFor renders one human-readable message per validation tag.
func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
