// internal/visa/pricing/tiers.go
package pricing

import (
	"fmt"
	"strings"
)

// CountryTier groups nationalities into pricing bands for ad campaigns.
type CountryTier string

const (
	Tier1 CountryTier = "TIER1"
	Tier2 CountryTier = "TIER2"
	Tier3 CountryTier = "TIER3"
)

// ServiceType is the campaign-facing service identifier. It is a superset of
// the wizard speed tiers and maps onto ad urgency levels.
type ServiceType string

const (
	ServiceUrgent1H ServiceType = "URGENT_1H"
	ServiceUrgent2H ServiceType = "URGENT_2H"
	ServiceUrgent4H ServiceType = "URGENT_4H"
	Service1Day     ServiceType = "1DAY"
	Service2Day     ServiceType = "2DAY"
	ServiceWeekend  ServiceType = "WEEKEND"
	ServiceStandard ServiceType = "STANDARD"
)

var countryTiers = map[string]CountryTier{
	// TIER 1 - High income countries
	"US": Tier1, "CA": Tier1, "AU": Tier1, "NZ": Tier1, "SG": Tier1,
	"CH": Tier1, "NO": Tier1, "AE": Tier1, "QA": Tier1, "KW": Tier1,
	"HK": Tier1, "JP": Tier1, "KR": Tier1,

	// TIER 2 - Medium income countries
	"GB": Tier2, "DE": Tier2, "FR": Tier2, "IT": Tier2, "ES": Tier2,
	"NL": Tier2, "BE": Tier2, "AT": Tier2, "SE": Tier2, "DK": Tier2,
	"FI": Tier2, "IE": Tier2, "PT": Tier2, "PL": Tier2, "CZ": Tier2,
	"RU": Tier2, "BR": Tier2, "MX": Tier2, "AR": Tier2, "CL": Tier2,
	"TW": Tier2, "IL": Tier2, "SA": Tier2, "ZA": Tier2, "TR": Tier2,

	// TIER 3 - Lower income countries
	"IN": Tier3, "PH": Tier3, "ID": Tier3, "TH": Tier3, "MY": Tier3,
	"VN": Tier3, "PK": Tier3, "BD": Tier3, "LK": Tier3, "NP": Tier3,
	"MM": Tier3, "KH": Tier3, "LA": Tier3, "EG": Tier3, "NG": Tier3,
	"KE": Tier3, "GH": Tier3, "CO": Tier3, "PE": Tier3, "VE": Tier3,
	"UA": Tier3, "RO": Tier3, "BG": Tier3, "HR": Tier3, "HU": Tier3,
}

// basePrices holds per-tier base prices in USD by service type.
var basePrices = map[ServiceType]map[CountryTier]int{
	ServiceUrgent1H: {Tier1: 299, Tier2: 249, Tier3: 199},
	ServiceUrgent2H: {Tier1: 249, Tier2: 199, Tier3: 159},
	ServiceUrgent4H: {Tier1: 199, Tier2: 169, Tier3: 139},
	Service1Day:     {Tier1: 149, Tier2: 129, Tier3: 99},
	Service2Day:     {Tier1: 129, Tier2: 109, Tier3: 89},
	ServiceWeekend:  {Tier1: 349, Tier2: 299, Tier3: 249},
	ServiceStandard: {Tier1: 79, Tier2: 69, Tier3: 49},
}

// GetCountryTier returns the pricing band for a nationality. Unmapped
// countries land in the middle band.
func GetCountryTier(countryCode string) CountryTier {
	if tier, ok := countryTiers[strings.ToUpper(countryCode)]; ok {
		return tier
	}
	return Tier2
}

// GetBasePrice returns the tier base price for a service and country.
func GetBasePrice(service ServiceType, countryCode string) (int, error) {
	prices, ok := basePrices[service]
	if !ok {
		return 0, fmt.Errorf("unknown service type: %s", service)
	}
	return prices[GetCountryTier(countryCode)], nil
}

// PricingTable returns every service price for a country, for display.
func PricingTable(countryCode string) map[ServiceType]int {
	tier := GetCountryTier(countryCode)
	table := make(map[ServiceType]int, len(basePrices))
	for service, prices := range basePrices {
		table[service] = prices[tier]
	}
	return table
}

// AdPrice formats the "from" price shown in ad copy, e.g. "$149".
func AdPrice(service ServiceType, countryCode string) (string, error) {
	price, err := GetBasePrice(service, countryCode)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("$%d", price), nil
}
