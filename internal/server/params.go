// internal/server/params.go
package server

import (
	"net/url"

	"visa-platform/internal/visa/pricing"
	"visa-platform/internal/visa/wizard"
)

// ApplyParams are the recognized apply-page query parameters, resolved to
// their defaults.
type ApplyParams struct {
	Flight      string `json:"flight,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Purpose     string `json:"purpose"`
	EntryPort   string `json:"entryPort,omitempty"`
	Speed       string `json:"speed"`
}

// ParseApplyParams reads the apply-flow query contract. Unknown purposes fall
// back to tourist and unknown speed tiers to the default tier; both fallbacks
// are silent because ad landing URLs carry arbitrary values.
func ParseApplyParams(values url.Values) ApplyParams {
	return ApplyParams{
		Flight:      values.Get("flight"),
		Nationality: values.Get("nationality"),
		Purpose:     wizard.NormalizePurpose(values.Get("purpose")),
		EntryPort:   values.Get("entryPort"),
		Speed:       pricing.ResolveSpeed(pricing.DefaultSpeeds(), values.Get("speed")).ID,
	}
}
