// Package contactform holds the contact form controller: the in-memory draft,
// its validation, and the idle -> submitting -> success/error lifecycle of a
// single submission.
package contactform

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var (
	ErrUnknownField       = errors.New("contactform: unknown field")
	ErrInvalidValue       = errors.New("contactform: invalid value for field")
	ErrValidation         = errors.New("contactform: draft has validation errors")
	ErrSubmissionInFlight = errors.New("contactform: a submission is already in flight")
)

const (
	SuccessBanner = "Thank you for your message! We will get back to you within 24-48 hours."
	ErrorBanner   = "Something went wrong. Please try again or call us directly."
)

// Sender delivers a validated submission. It owns transport and timeout policy.
type Sender interface {
	Send(ctx context.Context, sub domain.ContactSubmission) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, sub domain.ContactSubmission) error

func (f SenderFunc) Send(ctx context.Context, sub domain.ContactSubmission) error {
	return f(ctx, sub)
}

// StateChangeFunc observes a lifecycle transition.
type StateChangeFunc func(from, to State)

// Form is one contact form instance. It is safe for concurrent use, though a
// form normally sees only the sequential edits of a single visitor.
type Form struct {
	validate *validator.Validate
	sender   Sender

	mu        sync.Mutex
	draft     domain.ContactSubmission
	errors    domain.ValidationErrors
	state     State
	banner    string
	observers []StateChangeFunc
}

// New creates an empty form. serviceIDs is the catalog offered in the
// service interest dropdown.
func New(sender Sender, serviceIDs []string) *Form {
	return NewWithValidator(sender, validation.New(serviceIDs))
}

// NewWithValidator shares an already configured validator between forms.
func NewWithValidator(sender Sender, v *validator.Validate) *Form {
	return &Form{
		validate: v,
		sender:   sender,
		errors:   domain.ValidationErrors{},
	}
}

// OnStateChange registers fn to be called after every transition. Callbacks
// run outside the form's lock and may read the form.
func (f *Form) OnStateChange(fn StateChangeFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

// UpdateField sets one draft field. consentGiven takes a bool or a checkbox
// string ("on", "true", "off", ""); every other field takes a string.
// Any error shown for the field is cleared; other fields keep theirs.
func (f *Form) UpdateField(field string, value any) error {
	f.mu.Lock()

	if err := assign(&f.draft, field, value); err != nil {
		f.mu.Unlock()
		return err
	}
	delete(f.errors, field)

	var changed *transition
	if f.state == StateSuccess || f.state == StateError {
		changed = f.setState(StateIdle)
		f.banner = ""
	}
	f.mu.Unlock()

	f.notify(changed)
	return nil
}

// Validate checks the current draft without changing any form state.
func (f *Form) Validate() domain.ValidationErrors {
	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()
	return Validate(f.validate, draft)
}

// Submit validates the draft and, when it is valid, sends it. The returned
// state is the form state once Submit is done. Validation failures leave the
// state untouched and return ErrValidation without calling the sender. A send
// failure moves the form to StateError, keeps the draft and returns the
// sender's error; success resets the draft. A sender error carrying
// domain.ValidationErrors is a server side rejection: the fields are shown
// like local ones, the form goes back to StateIdle and the error wraps
// ErrValidation.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return StateSubmitting, ErrSubmissionInFlight
	}

	if errs := Validate(f.validate, f.draft); len(errs) > 0 {
		f.errors = errs
		state := f.state
		f.mu.Unlock()
		return state, ErrValidation
	}

	f.errors = domain.ValidationErrors{}
	f.banner = ""
	snapshot := f.draft
	started := f.setState(StateSubmitting)
	f.mu.Unlock()
	f.notify(started)

	sendErr := f.sender.Send(ctx, snapshot)

	var rejected domain.ValidationErrors
	f.mu.Lock()
	var finished *transition
	switch {
	case sendErr == nil:
		f.draft = domain.ContactSubmission{}
		finished = f.setState(StateSuccess)
		f.banner = SuccessBanner
	case errors.As(sendErr, &rejected) && len(rejected) > 0:
		f.errors = make(domain.ValidationErrors, len(rejected))
		for k, v := range rejected {
			f.errors[k] = v
		}
		finished = f.setState(StateIdle)
		sendErr = fmt.Errorf("%w: %w", ErrValidation, sendErr)
	default:
		finished = f.setState(StateError)
		f.banner = ErrorBanner
	}
	state := f.state
	f.mu.Unlock()
	f.notify(finished)

	return state, sendErr
}

// Draft returns a copy of the current field values.
func (f *Form) Draft() domain.ContactSubmission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Errors returns a copy of the errors currently displayed.
func (f *Form) Errors() domain.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.ValidationErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Banner is the page level outcome message, empty unless the last submit
// finished in success or error.
func (f *Form) Banner() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.banner
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form) CanSubmit() bool {
	return f.State() != StateSubmitting
}

// Validate runs the contact rules against sub. The returned map is empty for
// a valid submission.
func Validate(v *validator.Validate, sub domain.ContactSubmission) domain.ValidationErrors {
	errs := domain.ValidationErrors{}
	if err := v.Struct(sub); err != nil {
		for field, msg := range validation.FieldErrors(err) {
			errs[field] = msg
		}
	}
	return errs
}

type transition struct {
	from, to State
}

// setState must be called with mu held.
func (f *Form) setState(to State) *transition {
	if f.state == to {
		return nil
	}
	t := &transition{from: f.state, to: to}
	f.state = to
	return t
}

func (f *Form) notify(t *transition) {
	if t == nil {
		return
	}
	f.mu.Lock()
	observers := append([]StateChangeFunc(nil), f.observers...)
	f.mu.Unlock()
	for _, fn := range observers {
		fn(t.from, t.to)
	}
}

func assign(d *domain.ContactSubmission, field string, value any) error {
	if field == domain.FieldConsentGiven {
		consent, err := parseConsent(value)
		if err != nil {
			return err
		}
		d.ConsentGiven = consent
		return nil
	}

	var target *string
	switch field {
	case domain.FieldName:
		target = &d.Name
	case domain.FieldEmail:
		target = &d.Email
	case domain.FieldPhone:
		target = &d.Phone
	case domain.FieldServiceInterest:
		target = &d.ServiceInterest
	case domain.FieldMessage:
		target = &d.Message
	default:
		return ErrUnknownField
	}

	s, ok := value.(string)
	if !ok {
		return ErrInvalidValue
	}
	*target = s
	return nil
}

func parseConsent(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		normalized := strings.ToLower(strings.TrimSpace(v))
		switch normalized {
		case "on", "yes":
			return true, nil
		case "", "off", "no":
			return false, nil
		}
		b, err := strconv.ParseBool(normalized)
		if err != nil {
			return false, ErrInvalidValue
		}
		return b, nil
	default:
		return false, ErrInvalidValue
	}
}
