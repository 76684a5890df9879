package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps field names (json names) to user-friendly labels
var FieldLabels = map[string]string{
	"name":            "Name",
	"email":           "Email",
	"phone":           "Phone",
	"serviceInterest": "Service interest",
	"message":         "Message",
	"consentGiven":    "Privacy consent",
}

// fieldMessages overrides the generic message for a field/tag pair
var fieldMessages = map[string]string{
	"email.contact_email":        "Please enter a valid email address",
	"consentGiven.required":      "You must agree to the privacy policy",
	"serviceInterest.service_id": "Please select a valid service",
}

// FieldErrors converts validator.ValidationErrors into a field -> message map.
// Only the first failing rule of each field is reported. Errors that are not
// validation errors are returned under the empty key.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	if err == nil {
		return out
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out[""] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		out[e.Field()] = formatSingleError(e)
	}
	return out
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
// prefixed with the failing field's namespace. Used for configuration errors.
func FormatValidationErrors(err error) []string {
	var messages []string

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Namespace(), formatSingleError(e)))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	fieldName := e.Field()
	if msg, ok := fieldMessages[fieldName+"."+e.Tag()]; ok {
		return msg
	}

	label := getFieldLabel(fieldName)
	param := e.Param()

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email", "contact_email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "url":
		return fmt.Sprintf("%s is not a valid URL", label)

	case "unique":
		return fmt.Sprintf("%s must not contain duplicate %s values", label, param)

	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to spaced words with a leading capital
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		} else if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
			r += 'a' - 'A'
		}
		result.WriteRune(r)
	}
	return result.String()
}
