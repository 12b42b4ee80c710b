// internal/visa/application/models.go
package application

import "time"

// TripDetails is the trip section of a submission.
type TripDetails struct {
	Applicants       int    `json:"applicants"`
	Purpose          string `json:"purpose"`
	EntryPort        string `json:"entryPort"`
	ExitPort         string `json:"exitPort"`
	EntryDate        string `json:"entryDate"`
	ExitDate         string `json:"exitDate"`
	AddressInVietnam string `json:"addressInVietnam"`
	CityProvince     string `json:"cityProvince"`
	FlightNumber     string `json:"flightNumber,omitempty"`
	EntryType        string `json:"entryType"`
}

// Applicant is one traveller in a submission. Contact fields are denormalized
// onto every applicant so each record is self-contained downstream.
type Applicant struct {
	FullName              string `json:"fullName"`
	Nationality           string `json:"nationality"`
	PassportNumber        string `json:"passportNumber"`
	DateOfBirth           string `json:"dateOfBirth"`
	Gender                string `json:"gender"`
	Religion              string `json:"religion"`
	PlaceOfBirth          string `json:"placeOfBirth"`
	PassportType          string `json:"passportType"`
	PassportIssueDate     string `json:"passportIssueDate,omitempty"`
	PassportExpiry        string `json:"passportExpiry"`
	IssuingAuthority      string `json:"issuingAuthority,omitempty"`
	PermanentAddress      string `json:"permanentAddress"`
	ContactAddress        string `json:"contactAddress"`
	Telephone             string `json:"telephone"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyAddress      string `json:"emergencyAddress"`
	EmergencyPhone        string `json:"emergencyPhone"`
	EmergencyRelationship string `json:"emergencyRelationship"`
	Email                 string `json:"email"`
	Mobile                string `json:"mobile"`
	WhatsApp              string `json:"whatsapp,omitempty"`
}

// Request is a complete application submission.
type Request struct {
	TripDetails TripDetails `json:"tripDetails"`
	Applicants  []Applicant `json:"applicants"`
	Language    string      `json:"language,omitempty"`
	VisaSpeed   string      `json:"visaSpeed"`
}

// Result is returned after a submission is recorded.
type Result struct {
	ApplicationID   string   `json:"applicationId"`
	ReferenceNumber string   `json:"referenceNumber"`
	ApplicantIDs    []string `json:"applicantIds"`
	Amount          int      `json:"amount"`
}

// Summary is the order view returned by lookups.
type Summary struct {
	ApplicationID   string    `json:"applicationId"`
	ReferenceNumber string    `json:"referenceNumber"`
	Status          string    `json:"status"`
	VisaSpeed       string    `json:"visaSpeed"`
	EntryDate       string    `json:"entryDate"`
	ApplicantCount  int       `json:"applicantCount"`
	Amount          int       `json:"amount"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"createdAt"`
}
