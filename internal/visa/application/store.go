// internal/visa/application/store.go
package application

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/visa/pricing"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	StatusPendingPayment = "pending_payment"
	StatusPaid           = "paid"
	StatusProcessing     = "processing"
	StatusCompleted      = "completed"
)

// Store persists applications in PostgreSQL and serves order lookups.
type Store struct {
	db     *sql.DB
	engine *pricing.Engine
	logger logger.Logger
}

func NewStore(db *sql.DB, engine *pricing.Engine, log logger.Logger) *Store {
	return &Store{
		db:     db,
		engine: engine,
		logger: log.WithFields(map[string]interface{}{"component": "application-store"}),
	}
}

// newReferenceNumber builds a customer-facing reference like VN-3F2A9C1D.
func newReferenceNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "VN-" + id[:8]
}

// Create prices the order and inserts the application with its applicants in
// one transaction.
func (s *Store) Create(ctx context.Context, req *Request) (*Result, error) {
	quote, err := s.engine.Price(req.VisaSpeed, pricing.EntryType(req.TripDetails.EntryType), len(req.Applicants))
	if err != nil {
		return nil, errors.NewApplicationValidationFailedError(err.Error())
	}

	applicationID := uuid.NewString()
	referenceNumber := newReferenceNumber()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.NewDatabaseConnectionFailedError(err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO applications (
			id, reference_number, status, visa_speed, purpose,
			entry_port, exit_port, entry_date, exit_date,
			address_in_vietnam, city_province, flight_number, entry_type,
			applicant_count, amount, language, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		applicationID, referenceNumber, StatusPendingPayment, quote.SpeedID, req.TripDetails.Purpose,
		req.TripDetails.EntryPort, req.TripDetails.ExitPort, req.TripDetails.EntryDate, req.TripDetails.ExitDate,
		req.TripDetails.AddressInVietnam, req.TripDetails.CityProvince, req.TripDetails.FlightNumber, req.TripDetails.EntryType,
		len(req.Applicants), quote.TotalAmount, req.Language, now,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewDuplicateApplicationError(applicationID)
		}
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	applicantIDs := make([]string, 0, len(req.Applicants))
	for _, a := range req.Applicants {
		applicantID := uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO applicants (
				id, application_id, full_name, nationality, passport_number,
				date_of_birth, gender, religion, place_of_birth, passport_type,
				passport_issue_date, passport_expiry, issuing_authority,
				permanent_address, contact_address, telephone,
				emergency_contact_name, emergency_address, emergency_phone, emergency_relationship,
				email, mobile, whatsapp, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
			applicantID, applicationID, a.FullName, a.Nationality, a.PassportNumber,
			a.DateOfBirth, a.Gender, a.Religion, a.PlaceOfBirth, a.PassportType,
			a.PassportIssueDate, a.PassportExpiry, a.IssuingAuthority,
			a.PermanentAddress, a.ContactAddress, a.Telephone,
			a.EmergencyContactName, a.EmergencyAddress, a.EmergencyPhone, a.EmergencyRelationship,
			a.Email, a.Mobile, a.WhatsApp, now,
		)
		if err != nil {
			return nil, errors.NewDatabaseInsertFailedError(err)
		}
		applicantIDs = append(applicantIDs, applicantID)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("application recorded", map[string]interface{}{
		"applicationId":   applicationID,
		"referenceNumber": referenceNumber,
		"applicantCount":  len(applicantIDs),
		"amount":          quote.TotalAmount,
	})

	return &Result{
		ApplicationID:   applicationID,
		ReferenceNumber: referenceNumber,
		ApplicantIDs:    applicantIDs,
		Amount:          quote.TotalAmount,
	}, nil
}

const summaryColumns = `
	a.id, a.reference_number, a.status, a.visa_speed, a.entry_date,
	a.applicant_count, a.amount, a.created_at,
	COALESCE((SELECT ap.email FROM applicants ap WHERE ap.application_id = a.id LIMIT 1), '')`

func (s *Store) scanSummary(row *sql.Row) (*Summary, error) {
	var sum Summary
	err := row.Scan(
		&sum.ApplicationID, &sum.ReferenceNumber, &sum.Status, &sum.VisaSpeed, &sum.EntryDate,
		&sum.ApplicantCount, &sum.Amount, &sum.CreatedAt, &sum.Email,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewApplicationNotFoundError("")
	}
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("application_summary", err)
	}
	return &sum, nil
}

// GetByID fetches an order summary by application id.
func (s *Store) GetByID(ctx context.Context, applicationID string) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM applications a WHERE a.id = $1`, summaryColumns), applicationID)
	return s.scanSummary(row)
}

// GetByReference fetches an order summary by customer reference number.
func (s *Store) GetByReference(ctx context.Context, referenceNumber string) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM applications a WHERE a.reference_number = $1`, summaryColumns), referenceNumber)
	return s.scanSummary(row)
}

// GetByPaymentIntent fetches an order summary by the payment intent recorded
// when the checkout completed.
func (s *Store) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM applications a WHERE a.payment_intent_id = $1`, summaryColumns), paymentIntentID)
	return s.scanSummary(row)
}

// MarkPaid records a successful payment against an application.
func (s *Store) MarkPaid(ctx context.Context, applicationID, paymentIntentID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications SET status = $1, payment_intent_id = $2, paid_at = $3
		WHERE id = $4`,
		StatusPaid, paymentIntentID, time.Now().UTC(), applicationID,
	)
	if err != nil {
		return errors.NewQueryExecutionFailedError("mark_paid", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.NewQueryExecutionFailedError("mark_paid", err)
	}
	if affected == 0 {
		return errors.NewApplicationNotFoundError(fmt.Sprintf("applicationId: %s", applicationID))
	}
	return nil
}
