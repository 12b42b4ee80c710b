// internal/visa/wizard/scan.go
package wizard

import (
	"time"

	"visa-platform/internal/visa/countries"
)

// PassportScan carries the fields extracted from a passport photo's machine
// readable zone.
type PassportScan struct {
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Nationality      string `json:"nationality"`
	PassportNumber   string `json:"passportNumber"`
	PassportExpiry   string `json:"passportExpiry"`
	DateOfIssue      string `json:"dateOfIssue"`
	IssuingAuthority string `json:"issuingAuthority"`
}

// ApplyScan fills the current applicant's form from scanned passport data.
// Scanned fields overwrite their form counterparts; place of birth and issuing
// authority are derived from the nationality only when still blank, since the
// MRZ does not carry them directly.
func (w *Wizard) ApplyScan(scan PassportScan) {
	current := &w.applicants[w.cursor]

	if scan.FullName != "" {
		current.FullName = scan.FullName
	}
	if scan.DateOfBirth != "" {
		current.DateOfBirth = scan.DateOfBirth
	}
	if scan.Gender != "" {
		current.Gender = scan.Gender
	}
	if scan.Nationality != "" {
		current.Nationality = scan.Nationality
		if current.PlaceOfBirth == "" {
			current.PlaceOfBirth = countries.Name(scan.Nationality)
		}
		if current.IssuingAuthority == "" {
			current.IssuingAuthority = scan.Nationality
		}
	}
	if scan.PassportNumber != "" {
		current.PassportNumber = scan.PassportNumber
	}
	if scan.PassportExpiry != "" {
		current.PassportExpiry = scan.PassportExpiry
	}
	if scan.DateOfIssue != "" {
		current.DateOfIssue = scan.DateOfIssue
	}
	if scan.IssuingAuthority != "" && current.IssuingAuthority == "" {
		current.IssuingAuthority = scan.IssuingAuthority
	}

	w.logger.Debug("applied passport scan", map[string]interface{}{
		"applicantIndex": w.cursor,
		"nationality":    scan.Nationality,
	})
}

// StayDuration returns the trip length in days from the entry and exit dates,
// or zero when either date is missing or malformed.
func (t TravelDetails) StayDuration() int {
	entry, err := time.Parse("2006-01-02", t.EntryDate)
	if err != nil {
		return 0
	}
	exit, err := time.Parse("2006-01-02", t.ExitDate)
	if err != nil {
		return 0
	}
	days := int(exit.Sub(entry).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
