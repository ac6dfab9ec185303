// Package validation checks request DTOs and config structs against their
// `validate` tags.
package validation

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/learnsphere-dev/learnsphere/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v. A failed check is reported as a 400 ErrorWithStatusCode
// naming every offending field, so callers can treat it like a rejected request.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return fmt.Errorf("validation: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return &errors.ErrorWithStatusCode{
		Message:    "invalid fields: " + strings.Join(fields, ", "),
		StatusCode: http.StatusBadRequest,
	}
}
