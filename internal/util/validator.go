package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// credit: https://github.com/go-playground/validator/issues/559#issuecomment-976459959

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ApiError) Error() string {
	return e.Message
}

// MessageForFieldError turns a validator error into a sentence a visitor can act on.
// customField maps struct field names to display names, e.g. {"FullName": "Name"}.
func MessageForFieldError(fe validator.FieldError, customField map[string]string) string {
	field := fe.Field()
	if name, ok := customField[field]; ok {
		field = name
	}

	switch fe.Tag() {
	case "required", "required_if", "required_without":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Please enter a valid email address"
	case "numeric", "number":
		return fmt.Sprintf("%v must be numeric", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Please select at least %v %v", fe.Param(), strings.ToLower(field))
		}
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Please select at most %v %v", fe.Param(), strings.ToLower(field))
		}
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of: %v", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url", "http_url":
		return fmt.Sprintf("%v must be a valid URL", field)
	case "datetime":
		return fmt.Sprintf("%v must be a valid date (%v)", field, fe.Param())
	case "phone":
		return "Please enter a valid phone number"
	case "cmin":
		return fmt.Sprintf("%v must be at least %v non-whitespace characters", field, fe.Param())
	case "cmax":
		return fmt.Sprintf("%v must be at most %v non-whitespace characters", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	}

	return fe.Error()
}

/*
GenerateErrorMessages extracts validation errors and returns them as an array of ApiError.
Each ApiError contains the field name and a descriptive error message.

Example output:

	[
	  {
		"field": "email",
		"message": "Please enter a valid email address"
	  }
	]

Optional Parameters:
- customField (map[string]string): A map to override field names in the error messages.
- fieldName (string): The field reported for errors that are not validator errors.
*/
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	var customField map[string]string
	var fieldName string

	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			customField = v
		case string:
			fieldName = v
		}
	}

	if err == nil {
		return []ApiError{}
	}

	var apiErr ApiError
	if errors.As(err, &apiErr) {
		return []ApiError{apiErr}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			out[i] = ApiError{Field: jsonFieldName(fe), Message: MessageForFieldError(fe, customField)}
		}
		return out
	}

	if fieldName == "" {
		fieldName = "unknown"
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return []ApiError{{Field: fieldName, Message: "Record not found"}}
	default:
		return []ApiError{{Field: fieldName, Message: err.Error()}}
	}
}

// Namespace without the root struct, json names when the validator was set up with a tag name func.
func jsonFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

// Uses the `json` tag (or `form`) as the field name reported by validation errors.
func JSONTagName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		return err
	}
	if err := v.RegisterValidation("cmin", CustomMin); err != nil {
		return err
	}
	if err := v.RegisterValidation("cmax", CustomMax); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone", Phone); err != nil {
		return err
	}
	return nil
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	return len(strings.TrimSpace(field.String())) > 0
}

// check if string has length of at least the minimum value, after trimming spaces
// Usage: `binding:"cmin=3"`
func CustomMin(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	minLength, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len([]rune(strings.TrimSpace(field.String()))) >= minLength
}

// check if string has length of at most the maximum value, after trimming spaces
// Usage: `binding:"cmax=3"`
func CustomMax(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	maxLength, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len([]rune(strings.TrimSpace(field.String()))) <= maxLength
}

// Loose phone check: digits with optional +, spaces, dashes, dots and parentheses, 7 to 15 digits.
// Usage: `validate:"omitempty,phone"`
func Phone(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	digits := 0
	for i, r := range strings.TrimSpace(field.String()) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
