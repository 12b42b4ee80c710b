// internal/visa/pricing/speeds.go
package pricing

// SpeedTier is a processing speed option shown in the wizard.
type SpeedTier struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Price is the per-applicant base price in whole USD.
	Price int `json:"price"`
}

// DefaultSpeedID is used whenever a requested tier is unknown or empty.
const DefaultSpeedID = "30-min"

// DefaultSpeeds returns the production processing speed options.
func DefaultSpeeds() []SpeedTier {
	return []SpeedTier{
		{ID: "30-min", Label: "30 Minutes", Price: 199},
		{ID: "4-hour", Label: "4 Hours", Price: 139},
		{ID: "1-day", Label: "1 Day", Price: 99},
		{ID: "2-day", Label: "2 Days", Price: 89},
		{ID: "weekend", Label: "Weekend", Price: 249},
	}
}

// ResolveSpeed finds a tier by ID within the given list. Unknown or empty IDs
// fall back to the default tier rather than failing.
func ResolveSpeed(speeds []SpeedTier, id string) SpeedTier {
	for _, s := range speeds {
		if s.ID == id {
			return s
		}
	}
	for _, s := range speeds {
		if s.ID == DefaultSpeedID {
			return s
		}
	}
	// List without the default tier: first entry wins.
	return speeds[0]
}
