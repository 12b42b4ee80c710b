// internal/ads/templates/templates.go
package templates

import (
	"fmt"
	"strings"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/metrics"
	"visa-platform/internal/visa/pricing"
)

// Language identifies an ad campaign language. Unsupported languages fall
// back to English.
type Language string

const (
	LangEN Language = "EN"
	LangES Language = "ES"
	LangPT Language = "PT"
	LangFR Language = "FR"
	LangRU Language = "RU"
	LangHI Language = "HI"
)

// Responsive search ad limits imposed by the ads platform.
const (
	MaxHeadlineChars    = 30
	MaxHeadlineCount    = 15
	MaxDescriptionChars = 90
	MaxDescriptionCount = 4
)

const baseURL = "https://vietnamvisahelp.com"

// Template is the ad copy for one language and service type. Headlines and
// descriptions may carry {AIRPORT}, {CITY}, {PRICE} and {TIME} placeholders.
type Template struct {
	Headlines    []string
	Descriptions []string
	FinalURL     string
	Keywords     []string
}

// catalog is populated by the per-language catalog files.
var catalog = map[Language]map[pricing.ServiceType]Template{
	LangEN: templatesEN,
	LangES: templatesES,
	LangPT: templatesPT,
	LangFR: templatesFR,
	LangRU: templatesRU,
	LangHI: templatesHI,
}

// Get returns the template for a language and service type. Unknown languages
// fall back to English; unknown service types are an error.
func Get(lang Language, service pricing.ServiceType) (Template, error) {
	perService, ok := catalog[Language(strings.ToUpper(string(lang)))]
	if !ok {
		perService = catalog[LangEN]
	}
	tpl, ok := perService[service]
	if !ok {
		// A language may lag behind the English catalog.
		if tpl, ok = catalog[LangEN][service]; !ok {
			return Template{}, errors.NewTemplateNotFoundError(string(lang), string(service))
		}
	}
	return tpl, nil
}

// Replacements carries placeholder values. Empty fields leave their
// placeholder untouched.
type Replacements struct {
	Airport string
	City    string
	Price   string
	Time    string
}

// Apply substitutes the placeholders present in text.
func (r Replacements) Apply(text string) string {
	if r.Airport != "" {
		text = strings.ReplaceAll(text, "{AIRPORT}", r.Airport)
	}
	if r.City != "" {
		text = strings.ReplaceAll(text, "{CITY}", r.City)
	}
	if r.Price != "" {
		text = strings.ReplaceAll(text, "{PRICE}", r.Price)
	}
	if r.Time != "" {
		text = strings.ReplaceAll(text, "{TIME}", r.Time)
	}
	return text
}

// AdCopy is a fully substituted ad ready for campaign upload.
type AdCopy struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	FinalURL     string   `json:"final_url"`
	Keywords     []string `json:"keywords"`
}

// Params selects the template and supplies placeholder values for one
// generated ad.
type Params struct {
	Language Language
	Service  pricing.ServiceType
	Airport  string
	City     string
	Price    int
}

// Selector generates and validates campaign ad copy.
type Selector struct {
	logger logger.Logger
}

func NewSelector(log logger.Logger) *Selector {
	return &Selector{
		logger: log.WithFields(map[string]interface{}{"component": "ad-selector"}),
	}
}

// Generate builds substituted ad copy for the given campaign parameters. The
// result is validated against the platform limits before it is returned.
func (s *Selector) Generate(p Params) (*AdCopy, error) {
	tpl, err := Get(p.Language, p.Service)
	if err != nil {
		return nil, err
	}

	repl := Replacements{Airport: p.Airport, City: p.City}
	if p.Price > 0 {
		repl.Price = fmt.Sprintf("$%d", p.Price)
	}

	copyOut := &AdCopy{
		Headlines:    make([]string, len(tpl.Headlines)),
		Descriptions: make([]string, len(tpl.Descriptions)),
		FinalURL:     tpl.FinalURL,
		Keywords:     tpl.Keywords,
	}
	for i, h := range tpl.Headlines {
		copyOut.Headlines[i] = repl.Apply(h)
	}
	for i, d := range tpl.Descriptions {
		copyOut.Descriptions[i] = repl.Apply(d)
	}
	if p.Airport != "" {
		copyOut.FinalURL = fmt.Sprintf("%s&airport=%s", tpl.FinalURL, p.Airport)
	}

	// Some catalog copy runs over the platform limits. The ads console
	// truncates those assets, so violations are reported but do not block
	// generation.
	if errs := ValidateCopy(copyOut.Headlines, copyOut.Descriptions); len(errs) > 0 {
		s.logger.Warn("generated ad copy exceeds platform limits", map[string]interface{}{
			"language": string(p.Language),
			"service":  string(p.Service),
			"errors":   errs,
		})
	}

	metrics.AdCopyGenerated.WithLabelValues(string(p.Language), string(p.Service)).Inc()
	return copyOut, nil
}

// Validate checks the copy for a campaign without generating it, returning a
// validation error listing every violation.
func (s *Selector) Validate(lang Language, service pricing.ServiceType) error {
	tpl, err := Get(lang, service)
	if err != nil {
		return err
	}
	if errs := ValidateTemplate(tpl); len(errs) > 0 {
		return errors.NewTemplateValidationFailedError(strings.Join(errs, "; "))
	}
	return nil
}

// ValidateHeadline checks one headline against the character limit.
func ValidateHeadline(headline string) error {
	if n := len([]rune(headline)); n > MaxHeadlineChars {
		return fmt.Errorf("headline too long: %d/%d chars", n, MaxHeadlineChars)
	}
	return nil
}

// ValidateDescription checks one description against the character limit.
func ValidateDescription(description string) error {
	if n := len([]rune(description)); n > MaxDescriptionChars {
		return fmt.Errorf("description too long: %d/%d chars", n, MaxDescriptionChars)
	}
	return nil
}

// ValidateCopy checks headline and description counts and lengths, returning
// one message per violation.
func ValidateCopy(headlines, descriptions []string) []string {
	var errs []string
	if len(headlines) > MaxHeadlineCount {
		errs = append(errs, fmt.Sprintf("too many headlines: %d/%d", len(headlines), MaxHeadlineCount))
	}
	if len(descriptions) > MaxDescriptionCount {
		errs = append(errs, fmt.Sprintf("too many descriptions: %d/%d", len(descriptions), MaxDescriptionCount))
	}
	for i, h := range headlines {
		if err := ValidateHeadline(h); err != nil {
			errs = append(errs, fmt.Sprintf("headline %d: %v", i+1, err))
		}
	}
	for i, d := range descriptions {
		if err := ValidateDescription(d); err != nil {
			errs = append(errs, fmt.Sprintf("description %d: %v", i+1, err))
		}
	}
	return errs
}

// ValidateTemplate checks a raw template before substitution.
func ValidateTemplate(tpl Template) []string {
	return ValidateCopy(tpl.Headlines, tpl.Descriptions)
}
