package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label, e.g.
// fecha_nacimiento -> Fecha Nacimiento.
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Spanish)
	return caser.String(s)
}

// MapValidationError converts binding failures into a validation AppError.
// Every failing field is listed in Details; the message names the first one.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field())
		}

		e := errs[0]
		label := formatFieldName(e.Field())

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(label)
		default:
			appErr = InvalidField(label)
		}
		return appErr.WithDetails(map[string]any{"fields": fields})
	}

	return ErrInvalidInput
}
