package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"haitch/internal/shared/errors"
)

var cnPhoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("cn_phone", func(fl validator.FieldLevel) bool {
			return cnPhoneRegex.MatchString(fl.Field().String())
		})
	}
}

// BindingError converts a gin binding failure into a validation AppError with
// per-field messages when the failure came from struct validation.
func BindingError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("invalid request body", err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldErrorMessage(fieldError))
	}

	return errors.NewValidationError("invalid request body", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must have at least %s items", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must have at most %s items", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "cn_phone":
		return fmt.Sprintf("%s must be a valid mainland phone number", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
