package contactform_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"circles-of-care-site/internal/contactform"
	"circles-of-care-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var catalog = []string{"support-coordination", "plan-management"}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, sub domain.ContactSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func fill(t *testing.T, f *contactform.Form, values map[string]any) {
	t.Helper()
	for field, value := range values {
		require.NoError(t, f.UpdateField(field, value))
	}
}

func validValues() map[string]any {
	return map[string]any{
		domain.FieldName:            "Sam Taylor",
		domain.FieldEmail:           "sam@example.com",
		domain.FieldPhone:           "0400 000 000",
		domain.FieldServiceInterest: "plan-management",
		domain.FieldMessage:         "I would like to talk about my plan.",
		domain.FieldConsentGiven:    true,
	}
}

func recordTransitions(f *contactform.Form) *[]string {
	var mu sync.Mutex
	seen := []string{}
	f.OnStateChange(func(from, to contactform.State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, from.String()+"->"+to.String())
	})
	return &seen
}

func TestValidate(t *testing.T) {
	required := map[string]string{
		domain.FieldName:         "Name is required",
		domain.FieldEmail:        "Email is required",
		domain.FieldMessage:      "Message is required",
		domain.FieldConsentGiven: "You must agree to the privacy policy",
	}

	for field, msg := range required {
		t.Run("Should block submit when "+field+" is missing", func(t *testing.T) {
			sender := new(MockSender)
			f := contactform.New(sender, catalog)
			values := validValues()
			if field == domain.FieldConsentGiven {
				values[field] = false
			} else {
				values[field] = "   "
			}
			fill(t, f, values)

			errs := f.Validate()
			assert.Equal(t, msg, errs[field])
			assert.Empty(t, f.Errors(), "Validate must not mutate displayed errors")

			state, err := f.Submit(context.Background())
			assert.ErrorIs(t, err, contactform.ErrValidation)
			assert.Equal(t, contactform.StateIdle, state)
			assert.Equal(t, msg, f.Errors()[field])
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}

	t.Run("Should report every failing field at once", func(t *testing.T) {
		f := contactform.New(new(MockSender), catalog)
		errs := f.Validate()
		assert.Equal(t, domain.ValidationErrors{
			domain.FieldName:         "Name is required",
			domain.FieldEmail:        "Email is required",
			domain.FieldMessage:      "Message is required",
			domain.FieldConsentGiven: "You must agree to the privacy policy",
		}, errs)
	})

	t.Run("Should report malformed email addresses", func(t *testing.T) {
		for _, email := range []string{"sam", "sam@", "sam@example", "sam example@x.com"} {
			f := contactform.New(new(MockSender), catalog)
			values := validValues()
			values[domain.FieldEmail] = email
			fill(t, f, values)
			assert.Equal(t, domain.ValidationErrors{domain.FieldEmail: "Please enter a valid email address"}, f.Validate(), email)
		}
	})

	t.Run("Should accept an empty service interest but not an unknown one", func(t *testing.T) {
		f := contactform.New(new(MockSender), catalog)
		values := validValues()
		values[domain.FieldServiceInterest] = ""
		fill(t, f, values)
		assert.Empty(t, f.Validate())

		require.NoError(t, f.UpdateField(domain.FieldServiceInterest, "dog-walking"))
		assert.Equal(t, domain.ValidationErrors{domain.FieldServiceInterest: "Please select a valid service"}, f.Validate())
	})
}

func TestSubmit(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("Should succeed and reset the draft", func(t *testing.T) {
		sender := new(MockSender)
		f := contactform.New(sender, catalog)
		fill(t, f, validValues())
		want := f.Draft()
		sender.On("Send", mock.Anything, want).Return(nil).Once()

		transitions := recordTransitions(f)
		state, err := f.Submit(context.Background())

		require.NoError(t, err)
		assert.Equal(t, contactform.StateSuccess, state)
		assert.Equal(t, []string{"idle->submitting", "submitting->success"}, *transitions)
		assert.Equal(t, domain.ContactSubmission{}, f.Draft())
		assert.Equal(t, contactform.SuccessBanner, f.Banner())
		assert.True(t, f.CanSubmit())
		sender.AssertExpectations(t)
	})

	t.Run("Should keep the draft when sending fails", func(t *testing.T) {
		sender := new(MockSender)
		f := contactform.New(sender, catalog)
		fill(t, f, validValues())
		before := f.Draft()
		sendErr := errors.New("smtp unavailable")
		sender.On("Send", mock.Anything, before).Return(sendErr).Once()

		transitions := recordTransitions(f)
		state, err := f.Submit(context.Background())

		assert.ErrorIs(t, err, sendErr)
		assert.Equal(t, contactform.StateError, state)
		assert.Equal(t, []string{"idle->submitting", "submitting->error"}, *transitions)
		assert.Equal(t, before, f.Draft())
		assert.Equal(t, contactform.ErrorBanner, f.Banner())
		assert.Empty(t, f.Errors())
	})

	t.Run("Should allow a manual retry after a failure", func(t *testing.T) {
		sender := new(MockSender)
		f := contactform.New(sender, catalog)
		fill(t, f, validValues())
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		state, _ := f.Submit(context.Background())
		require.Equal(t, contactform.StateError, state)

		state, err := f.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, contactform.StateSuccess, state)
		sender.AssertNumberOfCalls(t, "Send", 2)
	})

	t.Run("Should refuse a second submit while one is in flight", func(t *testing.T) {
		release := make(chan struct{})
		sending := make(chan struct{})
		var calls int
		var mu sync.Mutex
		sender := contactform.SenderFunc(func(ctx context.Context, sub domain.ContactSubmission) error {
			mu.Lock()
			calls++
			mu.Unlock()
			close(sending)
			<-release
			return nil
		})

		f := contactform.New(sender, catalog)
		fill(t, f, validValues())

		done := make(chan contactform.State)
		go func() {
			state, _ := f.Submit(context.Background())
			done <- state
		}()

		<-sending
		assert.False(t, f.CanSubmit())
		state, err := f.Submit(context.Background())
		assert.ErrorIs(t, err, contactform.ErrSubmissionInFlight)
		assert.Equal(t, contactform.StateSubmitting, state)

		close(release)
		assert.Equal(t, contactform.StateSuccess, <-done)
		mu.Lock()
		assert.Equal(t, 1, calls)
		mu.Unlock()
	})
}

func TestSubmitRejectedBySender(t *testing.T) {
	t.Run("Should show field errors returned by the sender and keep the draft", func(t *testing.T) {
		sender := new(MockSender)
		f := contactform.New(sender, catalog)
		fill(t, f, validValues())
		before := f.Draft()
		rejected := domain.ValidationErrors{domain.FieldMessage: "Message is required"}
		sender.On("Send", mock.Anything, before).Return(fmt.Errorf("delivery refused: %w", rejected)).Once()

		transitions := recordTransitions(f)
		state, err := f.Submit(context.Background())

		assert.ErrorIs(t, err, contactform.ErrValidation)
		assert.Equal(t, contactform.StateIdle, state)
		assert.Equal(t, []string{"idle->submitting", "submitting->idle"}, *transitions)
		assert.Equal(t, rejected, f.Errors())
		assert.Empty(t, f.Banner())
		assert.Equal(t, before, f.Draft())
		assert.True(t, f.CanSubmit())
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("Should clear only the edited field's error", func(t *testing.T) {
		f := contactform.New(new(MockSender), catalog)
		_, err := f.Submit(context.Background())
		require.ErrorIs(t, err, contactform.ErrValidation)
		require.Len(t, f.Errors(), 4)

		require.NoError(t, f.UpdateField(domain.FieldName, "Sam"))
		errs := f.Errors()
		assert.NotContains(t, errs, domain.FieldName)
		assert.Contains(t, errs, domain.FieldEmail)
		assert.Contains(t, errs, domain.FieldMessage)
		assert.Contains(t, errs, domain.FieldConsentGiven)

		// Clearing is optimistic: an invalid value still clears until the next submit
		require.NoError(t, f.UpdateField(domain.FieldEmail, "not-an-email"))
		assert.NotContains(t, f.Errors(), domain.FieldEmail)
	})

	t.Run("Should return to idle when edited after an outcome", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("down"))
		f := contactform.New(sender, catalog)
		fill(t, f, validValues())
		_, _ = f.Submit(context.Background())
		require.Equal(t, contactform.StateError, f.State())

		transitions := recordTransitions(f)
		require.NoError(t, f.UpdateField(domain.FieldMessage, "Trying again"))
		assert.Equal(t, contactform.StateIdle, f.State())
		assert.Empty(t, f.Banner())
		assert.Equal(t, []string{"error->idle"}, *transitions)
	})

	t.Run("Should parse checkbox values for consent", func(t *testing.T) {
		f := contactform.New(new(MockSender), catalog)
		for value, want := range map[string]bool{"on": true, "true": true, "1": true, "": false, "off": false} {
			require.NoError(t, f.UpdateField(domain.FieldConsentGiven, value))
			assert.Equal(t, want, f.Draft().ConsentGiven, value)
		}
	})

	t.Run("Should reject unknown fields and wrong value types", func(t *testing.T) {
		f := contactform.New(new(MockSender), catalog)
		assert.ErrorIs(t, f.UpdateField("subject", "hi"), contactform.ErrUnknownField)
		assert.ErrorIs(t, f.UpdateField(domain.FieldName, 42), contactform.ErrInvalidValue)
		assert.ErrorIs(t, f.UpdateField(domain.FieldConsentGiven, "maybe"), contactform.ErrInvalidValue)
	})
}

func TestHTTPSender(t *testing.T) {
	t.Run("Should post the submission as JSON", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender := contactform.NewHTTPSender(srv.URL)
		sender.Client = srv.Client()
		err := sender.Send(context.Background(), domain.ContactSubmission{Name: "Sam"})
		require.NoError(t, err)
		assert.Equal(t, "application/json", got)
	})

	t.Run("Should surface the API message on rejection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"success":false,"message":"Contact service temporarily unavailable"}`))
		}))
		defer srv.Close()

		sender := contactform.NewHTTPSender(srv.URL)
		sender.Client = srv.Client()
		err := sender.Send(context.Background(), domain.ContactSubmission{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503: Contact service temporarily unavailable")
	})
}
