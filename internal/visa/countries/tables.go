// internal/visa/countries/tables.go
package countries

// RequirementType classifies what a passport holder needs to enter Vietnam.
type RequirementType string

const (
	VisaFree        RequirementType = "visa_free"
	EVisaRequired   RequirementType = "evisa"
	EmbassyRequired RequirementType = "embassy_required"
)

// Requirement is the resolved entry requirement for a nationality.
type Requirement struct {
	Type RequirementType `json:"type"`
	// Days is the maximum visa-free stay; zero unless Type is VisaFree.
	Days    int    `json:"days,omitempty"`
	Message string `json:"message"`
}

// Tables holds the classification lists the resolver consults.
// Lists are disjoint by construction in DefaultTables; Resolve relies on
// checking them in order of decreasing stay length.
type Tables struct {
	VisaFree45 map[string]bool
	VisaFree30 map[string]bool
	VisaFree21 map[string]bool
	VisaFree14 map[string]bool
	EVisa      map[string]bool
}

func toSet(codes ...string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// DefaultTables returns the production classification lists.
func DefaultTables() *Tables {
	return &Tables{
		VisaFree45: toSet(
			"DE", "FR", "IT", "ES", "GB", "RU", "JP", "KR",
			"DK", "SE", "NO", "FI", "BY",
		),
		VisaFree30: toSet(
			"TH", "MY", "SG", "ID", "LA", "KH", "MM", "BN", "PH",
		),
		VisaFree21: toSet("CL"),
		VisaFree14: toSet("KG"),
		EVisa: toSet(
			// Europe
			"AL", "AT", "AZ", "BY", "BE", "BA", "BG", "HR", "CY", "CZ",
			"DK", "EE", "FI", "FR", "GE", "DE", "GR", "HU", "IS", "IE",
			"IT", "KZ", "LV", "LT", "LU", "MT", "ME", "NL", "MK", "NO",
			"PL", "PT", "RO", "RU", "RS", "SK", "SI", "ES", "SE", "CH",
			"TR", "UA", "GB",
			// Asia & Oceania
			"AU", "BN", "CN", "IN", "ID", "JP", "KR", "MN", "MM", "NZ",
			"PH", "SG", "TW", "TH", "TL", "UZ",
			// Middle East
			"AE", "QA", "SA",
			// Americas
			"AR", "BR", "CA", "CL", "CO", "CU", "MX", "PA", "PE", "US",
			"UY", "VE",
		),
	}
}
