package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace and a single @
	contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// New builds a validator with the custom contact rules registered.
// serviceIDs is the catalog the service_id rule accepts; an empty value is always allowed.
func New(serviceIDs []string) *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	RegisterValidators(v, serviceIDs)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, serviceIDs []string) {
	allowed := make(map[string]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		allowed[id] = struct{}{}
	}

	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("service_id", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		_, ok := allowed[val]
		return ok
	})
}

// NotBlank rejects strings that are empty once surrounding whitespace is removed
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ContactEmail accepts the loose local@domain.tld shape used by the contact form.
// Empty values pass; pair with notblank when the address is required.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return contactEmailRegex.MatchString(val)
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
