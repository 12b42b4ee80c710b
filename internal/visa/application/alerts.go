// internal/visa/application/alerts.go
package application

import (
	"context"
	"fmt"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// urgentSpeeds are the tiers the operations team must act on within hours.
var urgentSpeeds = map[string]bool{
	"30-min": true,
	"4-hour": true,
}

// TopicPublisher abstracts the SNS client so the alerter can be tested
// without AWS.
type TopicPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Alerter notifies the operations topic when an urgent application arrives.
type Alerter struct {
	publisher TopicPublisher
	topicARN  string
	logger    logger.Logger
}

func NewAlerter(publisher TopicPublisher, topicARN string, log logger.Logger) *Alerter {
	return &Alerter{
		publisher: publisher,
		topicARN:  topicARN,
		logger:    log.WithFields(map[string]interface{}{"component": "application-alerter"}),
	}
}

// IsUrgentSpeed reports whether a tier warrants an operations alert.
func IsUrgentSpeed(speedID string) bool {
	return urgentSpeeds[speedID]
}

// NotifyUrgent publishes an operations alert for an urgent-tier submission.
// Non-urgent tiers are skipped silently so callers can invoke it
// unconditionally.
func (a *Alerter) NotifyUrgent(ctx context.Context, speedID string, result *Result) error {
	if !IsUrgentSpeed(speedID) {
		return nil
	}

	message := fmt.Sprintf(
		"Urgent visa application received.\nReference: %s\nSpeed: %s\nApplicants: %d\nAmount: $%d USD",
		result.ReferenceNumber, speedID, len(result.ApplicantIDs), result.Amount,
	)
	subject := fmt.Sprintf("URGENT visa order %s (%s)", result.ReferenceNumber, speedID)

	_, err := a.publisher.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		a.logger.WithError(err).Warn("urgent order alert failed", map[string]interface{}{
			"referenceNumber": result.ReferenceNumber,
			"speedId":         speedID,
		})
		return errors.NewNotificationSendFailedError("sns", err)
	}

	a.logger.Info("urgent order alert published", map[string]interface{}{
		"referenceNumber": result.ReferenceNumber,
		"speedId":         speedID,
	})
	return nil
}
