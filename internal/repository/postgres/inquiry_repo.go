package postgres

import (
	"context"
	"fmt"

	"circles-of-care-site/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is the part of *pgxpool.Pool the archive needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const createInquiriesTable = `
	CREATE TABLE IF NOT EXISTS contact_inquiries (
		reference_id     UUID PRIMARY KEY,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		service_interest TEXT NOT NULL DEFAULT '',
		service_title    TEXT NOT NULL DEFAULT '',
		message          TEXT NOT NULL,
		consent_given    BOOLEAN NOT NULL,
		received_at      TIMESTAMPTZ NOT NULL
	)
`

type inquiryRepo struct {
	db Execer
}

func NewInquiryRepository(db Execer) domain.InquiryRepository {
	return &inquiryRepo{db: db}
}

// EnsureSchema creates the archive table when it does not exist yet
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, createInquiriesTable); err != nil {
		return fmt.Errorf("postgres: create contact_inquiries: %w", err)
	}
	return nil
}

func (r *inquiryRepo) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `
		INSERT INTO contact_inquiries
			(reference_id, name, email, phone, service_interest, service_title, message, consent_given, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (reference_id) DO NOTHING
	`
	sub := inquiry.Submission
	_, err := r.db.Exec(ctx, query,
		inquiry.ReferenceID, sub.Name, sub.Email, sub.Phone, sub.ServiceInterest,
		inquiry.ServiceTitle, sub.Message, sub.ConsentGiven, inquiry.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: save inquiry %s: %w", inquiry.ReferenceID, err)
	}
	return nil
}
