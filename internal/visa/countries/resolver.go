// internal/visa/countries/resolver.go
package countries

import (
	"fmt"
	"regexp"
	"strings"

	"visa-platform/internal/common/logger"
)

var codePattern = regexp.MustCompile(`^[A-Z]{2}$`)

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidCode reports whether the input normalizes to a two-letter code.
// Classification itself is total; this exists for boundaries that want to
// reject malformed input before it reaches the tables.
func IsValidCode(code string) bool {
	return codePattern.MatchString(normalize(code))
}

// Resolver determines the entry requirement for a nationality. Tables are
// injected so tests can exercise classification boundaries without touching
// the production lists.
type Resolver struct {
	tables *Tables
	logger logger.Logger
}

func NewResolver(tables *Tables, log logger.Logger) *Resolver {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Resolver{
		tables: tables,
		logger: log.WithFields(map[string]interface{}{"component": "country-resolver"}),
	}
}

// Resolve returns the requirement for an ISO 3166-1 alpha-2 code. Lists are
// consulted longest stay first so a code present in both a visa-free list and
// the e-visa list resolves to visa-free. Codes on no list, malformed input
// included, default to embassy_required; every input has a defined result.
func (r *Resolver) Resolve(countryCode string) *Requirement {
	code := normalize(countryCode)

	req := r.classify(code)
	r.logger.Debug("resolved visa requirement", map[string]interface{}{
		"countryCode": code,
		"type":        string(req.Type),
		"days":        req.Days,
	})
	return req
}

func (r *Resolver) classify(code string) *Requirement {
	switch {
	case r.tables.VisaFree45[code]:
		return visaFreeRequirement(45)
	case r.tables.VisaFree30[code]:
		return visaFreeRequirement(30)
	case r.tables.VisaFree21[code]:
		return visaFreeRequirement(21)
	case r.tables.VisaFree14[code]:
		return visaFreeRequirement(14)
	case r.tables.EVisa[code]:
		return &Requirement{
			Type:    EVisaRequired,
			Message: "You are eligible for Vietnam E-Visa! Approval letter in just 30 minutes.",
		}
	default:
		return &Requirement{
			Type:    EmbassyRequired,
			Message: "You need to apply for a visa at the Vietnam Embassy or Consulate in your country.",
		}
	}
}

func visaFreeRequirement(days int) *Requirement {
	return &Requirement{
		Type:    VisaFree,
		Days:    days,
		Message: fmt.Sprintf("You can enter Vietnam visa-free for up to %d days!", days),
	}
}

// IsEVisaEligible reports whether the nationality can apply online at all,
// either because an e-visa is required or because a visa-free national may
// still want a longer stay.
func (r *Resolver) IsEVisaEligible(countryCode string) bool {
	return r.tables.EVisa[normalize(countryCode)]
}
