package web

import (
	"context"
	"errors"
	"net/http"

	"circles-of-care-site/internal/contactform"
	"circles-of-care-site/internal/delivery/http/middleware"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/apperror"
	"circles-of-care-site/pkg/logger"
	"circles-of-care-site/pkg/security"

	"github.com/gin-gonic/gin"
)

// contactView is what contact.tmpl renders
type contactView struct {
	Draft     domain.ContactSubmission
	Errors    domain.ValidationErrors
	Banner    string
	State     contactform.State
	CanSubmit bool
	CSRFToken string
	Services  []domain.Service
}

var formFields = []string{
	domain.FieldName,
	domain.FieldEmail,
	domain.FieldPhone,
	domain.FieldServiceInterest,
	domain.FieldMessage,
}

func (h *Handler) ContactForm(c *gin.Context) {
	form := h.newForm(nil)
	// Service pages link here with ?service=<id> to preselect the dropdown
	if id := c.Query("service"); id != "" {
		if _, ok := h.siteUC.Site().ServiceByID(id); ok {
			_ = form.UpdateField(domain.FieldServiceInterest, id)
		}
	}
	h.renderContact(c, http.StatusOK, form)
}

// SubmitContact drives a form controller with the posted values. The page is
// re-rendered with the outcome: field errors and the kept draft on failure,
// an empty form and the success banner once the inquiry was delivered.
func (h *Handler) SubmitContact(c *gin.Context) {
	var sendErr error
	form := h.newForm(&sendErr)

	for _, field := range formFields {
		if err := form.UpdateField(field, c.PostForm(field)); err != nil {
			c.Error(apperror.BadRequest("Invalid form field"))
			return
		}
	}
	// Unchecked checkboxes are not posted at all; unparseable values count as unchecked
	if err := form.UpdateField(domain.FieldConsentGiven, c.PostForm(domain.FieldConsentGiven)); err != nil {
		_ = form.UpdateField(domain.FieldConsentGiven, false)
	}

	state, err := form.Submit(c.Request.Context())
	switch {
	case errors.Is(err, contactform.ErrValidation):
		// Rejections from the usecase were already recorded there
		if sendErr == nil {
			requestID, clientIP := domain.RequestMeta(c.Request.Context())
			security.DefaultLogger().LogValidationFailed(c.Request.Context(), clientIP, requestID, form.Errors())
		}
		h.renderContact(c, http.StatusUnprocessableEntity, form)
	case err != nil:
		h.renderContact(c, statusFor(sendErr), form)
	default:
		logger.Log.Info("Contact form submitted", "request_id", c.GetString(middleware.RequestIDKey), "state", state.String())
		h.renderContact(c, http.StatusOK, form)
	}
}

// newForm builds a controller whose sender is the contact usecase. The
// usecase error is stored in sendErr so the page can pick a status code.
func (h *Handler) newForm(sendErr *error) *contactform.Form {
	sender := contactform.SenderFunc(func(ctx context.Context, sub domain.ContactSubmission) error {
		_, err := h.contactUC.SendContactMessage(ctx, &sub)
		if sendErr != nil {
			*sendErr = err
		}
		return err
	})
	return contactform.New(sender, h.siteUC.Site().ServiceIDs())
}

func (h *Handler) renderContact(c *gin.Context, code int, form *contactform.Form) {
	h.render(c, code, "contact.tmpl", Page{
		Title:       "Contact Us",
		Description: "Get in touch about NDIS support. We reply within 24-48 hours.",
		Data: contactView{
			Draft:     form.Draft(),
			Errors:    form.Errors(),
			Banner:    form.Banner(),
			State:     form.State(),
			CanSubmit: form.CanSubmit(),
			CSRFToken: middleware.CSRFToken(c),
			Services:  h.siteUC.ListServices(c.Request.Context()),
		},
	})
}

func statusFor(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
