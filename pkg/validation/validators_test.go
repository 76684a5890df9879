package validation_test

import (
	"errors"
	"testing"

	"circles-of-care-site/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type inquiry struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,contact_email"`
	Service string `json:"serviceInterest" validate:"service_id"`
	Consent bool   `json:"consentGiven" validate:"required"`
}

func TestContactRules(t *testing.T) {
	v := validation.New([]string{"plan-management", "personal-care"})

	t.Run("Should accept a complete inquiry", func(t *testing.T) {
		err := v.Struct(inquiry{Name: "Sam", Email: "sam@example.com", Service: "personal-care", Consent: true})
		assert.NoError(t, err)
	})

	t.Run("Should report blank name by json field name", func(t *testing.T) {
		err := v.Struct(inquiry{Name: "   ", Email: "sam@example.com", Consent: true})
		assert.Equal(t, map[string]string{"name": "Name is required"}, validation.FieldErrors(err))
	})

	t.Run("Should report required before format for an empty email", func(t *testing.T) {
		err := v.Struct(inquiry{Name: "Sam", Consent: true})
		assert.Equal(t, "Email is required", validation.FieldErrors(err)["email"])
	})

	t.Run("Should report malformed emails", func(t *testing.T) {
		for _, email := range []string{"sam", "sam@example", "sam @example.com", "@example.com", "sam@@example.com"} {
			err := v.Struct(inquiry{Name: "Sam", Email: email, Consent: true})
			assert.Equal(t, "Please enter a valid email address", validation.FieldErrors(err)["email"], email)
		}
	})

	t.Run("Should reject services outside the catalog", func(t *testing.T) {
		err := v.Struct(inquiry{Name: "Sam", Email: "sam@example.com", Service: "gardening", Consent: true})
		assert.Equal(t, map[string]string{"serviceInterest": "Please select a valid service"}, validation.FieldErrors(err))
	})

	t.Run("Should require consent", func(t *testing.T) {
		err := v.Struct(inquiry{Name: "Sam", Email: "sam@example.com"})
		assert.Equal(t, map[string]string{"consentGiven": "You must agree to the privacy policy"}, validation.FieldErrors(err))
	})

	t.Run("Should keep non validation errors under the empty key", func(t *testing.T) {
		assert.Equal(t, map[string]string{"": "boom"}, validation.FieldErrors(errors.New("boom")))
	})
}

func TestFormatValidationErrors(t *testing.T) {
	type identity struct {
		URL string `json:"url" validate:"required,url"`
	}
	type site struct {
		Identity identity `json:"identity"`
	}

	v := validation.New(nil)
	msgs := validation.FormatValidationErrors(v.Struct(site{Identity: identity{URL: "not a url"}}))
	assert.Equal(t, []string{"site.identity.url: Url is not a valid URL"}, msgs)
}
