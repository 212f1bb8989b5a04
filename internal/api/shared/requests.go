package shared

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/quillpress/quill-api/internal/domain"
)

// Global validator instance for reuse. Field names are reported by their
// query tag so that messages name the parameter the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateRequest validates the given struct using the validator package.
// The first failing field is returned as a *domain.ValidationError.
func ValidateRequest(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return domain.NewValidationError(fe.Field(), validationMessage(fe), rangeCause(fe))
	}
	return err
}

// QueryInt reads an integer query parameter. An absent or empty parameter
// yields def; anything that is not a base-10 integer is a validation error.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer", domain.ErrInvalidFormat)
	}
	return n, nil
}

func validationMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return "is invalid"
	}
}

func rangeCause(fe validator.FieldError) error {
	switch fe.Tag() {
	case "gte", "lte", "min", "max":
		if fe.Kind() == reflect.String {
			return domain.ErrTooLong
		}
		return domain.ErrOutOfRange
	default:
		return domain.ErrValidation
	}
}
