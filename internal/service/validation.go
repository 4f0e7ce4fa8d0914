package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

const graduationYearMin = 1950

// NewValidator builds the shared validator: json tag names in messages
// plus the gradyear rule (1950 through the current calendar year).
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("gradyear", func(fl validator.FieldLevel) bool {
		year := int(fl.Field().Int())
		return year >= graduationYearMin && year <= time.Now().Year()
	})
	return v
}

// validationError converts validator output into a single validation
// error enumerating every failing field and the rule it violated.
func validationError(err error) *appErrors.Error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describeFieldError(fe))
	}
	return appErrors.Validation(details...)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be a positive integer", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gradyear":
		return fmt.Sprintf("%s must be between %d and %d", field, graduationYearMin, time.Now().Year())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed on rule %q", field, fe.Tag())
	}
}
