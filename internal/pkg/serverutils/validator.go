package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks struct tags on a request DTO and folds all
// violations into one validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return NewValidationError("invalid request body")
	}

	fields := make([]string, 0, len(invalid))
	for _, f := range invalid {
		fields = append(fields, fmt.Sprintf("%s (%s)", f.Field(), f.Tag()))
	}
	return NewValidationError("validation failed: " + strings.Join(fields, ", "))
}
