// internal/visa/pricing/engine.go
package pricing

import (
	"errors"

	"visa-platform/internal/common/logger"
)

const (
	// MultipleEntryFee is the per-applicant surcharge for multiple entry visas.
	MultipleEntryFee = 30

	MinApplicants = 1
	MaxApplicants = 10
)

var (
	ErrApplicantCountInvalid = errors.New("APPLICANT_COUNT_INVALID")
)

// EntryType distinguishes single from multiple entry visas.
type EntryType string

const (
	SingleEntry   EntryType = "single"
	MultipleEntry EntryType = "multiple"
)

// Quote is the priced order for a group of applicants.
type Quote struct {
	SpeedID        string `json:"speedId"`
	BasePrice      int    `json:"basePrice"`
	MultiEntryFee  int    `json:"multiEntryFee"`
	PricePerPerson int    `json:"pricePerPerson"`
	ApplicantCount int    `json:"applicantCount"`
	TotalAmount    int    `json:"totalAmount"`
	Currency       string `json:"currency"`
}

// Engine computes order totals from the configured speed tiers.
type Engine struct {
	speeds []SpeedTier
	logger logger.Logger
}

func NewEngine(speeds []SpeedTier, log logger.Logger) *Engine {
	if len(speeds) == 0 {
		speeds = DefaultSpeeds()
	}
	return &Engine{
		speeds: speeds,
		logger: log.WithFields(map[string]interface{}{"component": "pricing-engine"}),
	}
}

// Speeds returns the configured tiers for display.
func (e *Engine) Speeds() []SpeedTier {
	return e.speeds
}

// Price computes the total for applicantCount applicants at the given speed.
// Unknown speed IDs silently fall back to the default tier. The total is
// (base + multiple entry fee) * count, with the fee applied per person.
func (e *Engine) Price(speedID string, entryType EntryType, applicantCount int) (*Quote, error) {
	if applicantCount < MinApplicants || applicantCount > MaxApplicants {
		return nil, ErrApplicantCountInvalid
	}

	speed := ResolveSpeed(e.speeds, speedID)

	fee := 0
	if entryType == MultipleEntry {
		fee = MultipleEntryFee
	}

	perPerson := speed.Price + fee
	total := perPerson * applicantCount

	e.logger.Debug("computed quote", map[string]interface{}{
		"speedId":        speed.ID,
		"entryType":      string(entryType),
		"applicantCount": applicantCount,
		"totalAmount":    total,
	})

	return &Quote{
		SpeedID:        speed.ID,
		BasePrice:      speed.Price,
		MultiEntryFee:  fee,
		PricePerPerson: perPerson,
		ApplicantCount: applicantCount,
		TotalAmount:    total,
		Currency:       "USD",
	}, nil
}
