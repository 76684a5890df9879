package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"circles-of-care-site/internal/contactform"
	"circles-of-care-site/internal/domain"
	"circles-of-care-site/pkg/apperror"
	"circles-of-care-site/pkg/logger"
	"circles-of-care-site/pkg/sanitize"
	"circles-of-care-site/pkg/security"
	"circles-of-care-site/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const archiveTimeout = 5 * time.Second

type contactUsecase struct {
	site        *domain.Site
	validate    *validator.Validate
	sender      domain.InquirySender
	archive     domain.InquiryRepository // nil when DATABASE_URL is unset
	sendTimeout time.Duration

	now   func() time.Time
	newID func() string
}

// NewContactUsecase creates a new contact usecase. archive may be nil.
func NewContactUsecase(site *domain.Site, sender domain.InquirySender, archive domain.InquiryRepository, sendTimeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		site:        site,
		validate:    validation.New(site.ServiceIDs()),
		sender:      sender,
		archive:     archive,
		sendTimeout: sendTimeout,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

func (uc *contactUsecase) Validate(sub *domain.ContactSubmission) domain.ValidationErrors {
	return contactform.Validate(uc.validate, *sub)
}

// SendContactMessage validates the submission, strips markup from it and
// delivers it. The archive write happens after delivery and never fails the call.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.ContactSubmission) (*domain.InquiryReceipt, error) {
	requestID, clientIP := domain.RequestMeta(ctx)

	if errs := uc.Validate(sub); len(errs) > 0 {
		security.DefaultLogger().LogValidationFailed(ctx, clientIP, requestID, errs)
		return nil, invalidSubmission(errs)
	}

	// Markup-only input can become blank once cleaned
	clean := cleanSubmission(*sub)
	if errs := uc.Validate(&clean); len(errs) > 0 {
		security.DefaultLogger().LogValidationFailed(ctx, clientIP, requestID, errs)
		return nil, invalidSubmission(errs)
	}

	if !uc.sender.IsConfigured() {
		return nil, apperror.ServiceUnavailable("Contact service temporarily unavailable", domain.ErrEmailNotConfigured)
	}

	inquiry := &domain.Inquiry{
		ReferenceID: uc.newID(),
		Submission:  clean,
		ReceivedAt:  uc.now().UTC(),
	}
	if svc, ok := uc.site.ServiceByID(clean.ServiceInterest); ok {
		inquiry.ServiceTitle = svc.Title
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.sendTimeout)
	defer cancel()

	if err := uc.sender.SendInquiry(sendCtx, inquiry); err != nil {
		logger.Log.Error("Failed to deliver inquiry",
			"request_id", requestID,
			"ip", clientIP,
			"reference_id", inquiry.ReferenceID,
			"timeout", errors.Is(err, context.DeadlineExceeded),
			"error", err,
		)
		if errors.Is(err, domain.ErrEmailNotConfigured) {
			return nil, apperror.ServiceUnavailable("Contact service temporarily unavailable", err)
		}
		return nil, apperror.New(http.StatusInternalServerError,
			"Failed to send message. Please try again later.",
			fmt.Errorf("%w: %v", domain.ErrSendFailed, err))
	}

	logger.Log.Info("Inquiry delivered",
		"request_id", requestID,
		"ip", clientIP,
		"reference_id", inquiry.ReferenceID,
		"service_interest", clean.ServiceInterest,
	)

	uc.archiveInquiry(ctx, inquiry)

	return &domain.InquiryReceipt{
		ReferenceID: inquiry.ReferenceID,
		ReceivedAt:  inquiry.ReceivedAt,
	}, nil
}

func (uc *contactUsecase) archiveInquiry(ctx context.Context, inquiry *domain.Inquiry) {
	if uc.archive == nil {
		return
	}
	// The visitor already has their answer; a cancelled request must not drop the row
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()

	if err := uc.archive.Save(archiveCtx, inquiry); err != nil {
		requestID, clientIP := domain.RequestMeta(ctx)
		logger.Log.Warn("Failed to archive inquiry",
			"request_id", requestID,
			"ip", clientIP,
			"reference_id", inquiry.ReferenceID,
			"error", err,
		)
	}
}

// invalidSubmission reports field errors to API clients in Details and keeps
// them reachable with errors.As for in-process callers.
func invalidSubmission(errs domain.ValidationErrors) *apperror.AppError {
	appErr := apperror.Unprocessable("Please correct the highlighted fields", errs)
	appErr.Err = errs
	return appErr
}

func cleanSubmission(sub domain.ContactSubmission) domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:            sanitize.Line(sub.Name),
		Email:           strings.TrimSpace(sub.Email),
		Phone:           sanitize.Line(sub.Phone),
		ServiceInterest: strings.TrimSpace(sub.ServiceInterest),
		Message:         sanitize.Text(sub.Message),
		ConsentGiven:    sub.ConsentGiven,
	}
}
