// internal/visa/application/mailer.go
package application

import (
	"context"
	"fmt"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
)

// EmailSender abstracts the SES client so the mailer can be tested without AWS.
type EmailSender interface {
	SendSimple(ctx context.Context, from, to, subject, body string) error
}

// Mailer sends the confirmation email after a submission is recorded.
type Mailer struct {
	sender    EmailSender
	fromEmail string
	logger    logger.Logger
}

func NewMailer(sender EmailSender, fromEmail string, log logger.Logger) *Mailer {
	return &Mailer{
		sender:    sender,
		fromEmail: fromEmail,
		logger:    log.WithFields(map[string]interface{}{"component": "application-mailer"}),
	}
}

// SendConfirmation emails the reference number and total to the applicant.
// Delivery failure never fails the submission.
func (m *Mailer) SendConfirmation(ctx context.Context, to string, result *Result) error {
	subject := fmt.Sprintf("Vietnam Visa Application Received - %s", result.ReferenceNumber)
	body := fmt.Sprintf(
		"Your visa application has been received.\n\n"+
			"Reference number: %s\n"+
			"Applicants: %d\n"+
			"Total amount: $%d USD\n\n"+
			"Keep the reference number for order lookups and payment.",
		result.ReferenceNumber, len(result.ApplicantIDs), result.Amount,
	)

	if err := m.sender.SendSimple(ctx, m.fromEmail, to, subject, body); err != nil {
		m.logger.WithError(err).Warn("confirmation email failed", map[string]interface{}{
			"referenceNumber": result.ReferenceNumber,
		})
		return errors.NewNotificationSendFailedError("email", err)
	}

	m.logger.Info("confirmation email sent", map[string]interface{}{
		"referenceNumber": result.ReferenceNumber,
	})
	return nil
}
