// internal/visa/wizard/wizard.go
package wizard

import (
	"context"
	"strconv"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/common/metrics"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/pricing"
	"visa-platform/internal/visa/session"
)

// State is the wizard's position in the application flow.
type State string

const (
	StateCollectingTrip      State = "collecting_trip_details"
	StateCollectingApplicant State = "collecting_applicant"
	StateConfirmingTerms     State = "confirming_terms"
	StateSubmitting          State = "submitting"
	StateSubmitted           State = "submitted"
	StateFailed              State = "failed"
)

// Consents are the checkboxes gating submission.
type Consents struct {
	InfoConfirmed   bool `json:"infoConfirmed"`
	AgreedToTerms   bool `json:"agreedToTerms"`
	AgreedToPrivacy bool `json:"agreedToPrivacy"`
}

// SessionSaver stores post-submission keys. Satisfied by session.Store.
type SessionSaver interface {
	SaveSubmission(ctx context.Context, sessionID string, keys *session.Keys) error
}

// Wizard drives one visa application from trip details to submission. It is
// not safe for concurrent use; each browser session owns its own instance.
type Wizard struct {
	travel     TravelDetails
	applicants []ApplicantData
	passport   []*photos.Photo
	portrait   []*photos.Photo
	contact    ContactInfo
	consents   Consents
	visaSpeed  string
	language   string

	state  State
	cursor int

	creator  application.Creator
	uploader *photos.Uploader
	sessions SessionSaver
	logger   logger.Logger

	result    *application.Result
	lastError *errors.StandardError
}

func New(creator application.Creator, uploader *photos.Uploader, sessions SessionSaver, log logger.Logger) *Wizard {
	w := &Wizard{
		travel: TravelDetails{
			ApplicantCount: 1,
			Purpose:        "tourist",
			EntryType:      "single",
		},
		visaSpeed: pricing.DefaultSpeedID,
		language:  "EN",
		state:     StateCollectingTrip,
		creator:   creator,
		uploader:  uploader,
		sessions:  sessions,
		logger:    log.WithFields(map[string]interface{}{"component": "wizard"}),
	}
	w.resize(1)
	return w
}

// Seed applies landing-page URL defaults before the first step. Empty values
// leave the corresponding field untouched; the purpose always normalizes.
func (w *Wizard) Seed(flight, nationality, purpose, entryPort, speedID string) {
	if flight != "" {
		w.travel.FlightNumber = flight
	}
	if entryPort != "" {
		w.travel.EntryPort = entryPort
	}
	w.travel.Purpose = NormalizePurpose(purpose)
	if nationality != "" && len(w.applicants) > 0 {
		w.applicants[0].Nationality = nationality
	}
	if speedID != "" {
		w.visaSpeed = speedID
	}
}

// State returns the current wizard state.
func (w *Wizard) State() State { return w.state }

// Snapshot is the wizard state as exposed over HTTP.
type Snapshot struct {
	State            State               `json:"state"`
	CurrentApplicant int                 `json:"currentApplicant"`
	TripDetails      TravelDetails       `json:"tripDetails"`
	Applicants       []ApplicantData     `json:"applicants"`
	Contact          ContactInfo         `json:"contact"`
	Consents         Consents            `json:"consents"`
	VisaSpeed        string              `json:"visaSpeed"`
	Result           *application.Result `json:"result,omitempty"`
	LastError        string              `json:"lastError,omitempty"`
}

// Snapshot returns a copy of the wizard for clients to render.
func (w *Wizard) Snapshot() Snapshot {
	snap := Snapshot{
		State:            w.state,
		CurrentApplicant: w.cursor,
		TripDetails:      w.travel,
		Applicants:       w.Applicants(),
		Contact:          w.contact,
		Consents:         w.consents,
		VisaSpeed:        w.visaSpeed,
		Result:           w.result,
	}
	if w.lastError != nil {
		snap.LastError = w.lastError.Message
	}
	return snap
}

// CurrentApplicant returns the applicant index the wizard is pointing at.
func (w *Wizard) CurrentApplicant() int { return w.cursor }

// Result returns the submission result once the wizard reaches submitted.
func (w *Wizard) Result() *application.Result { return w.result }

// LastError returns the error that moved the wizard to failed, if any.
func (w *Wizard) LastError() *errors.StandardError { return w.lastError }

// Applicants returns a copy of the applicant forms.
func (w *Wizard) Applicants() []ApplicantData {
	out := make([]ApplicantData, len(w.applicants))
	copy(out, w.applicants)
	return out
}

// Travel returns the trip step.
func (w *Wizard) Travel() TravelDetails { return w.travel }

// SetApplicantCount is the single mutator for group size. The count is
// clamped to [1, 10]; applicant forms and photo slots resize together,
// preserving data for indexes that survive. The cursor is clamped back into
// range when the group shrinks past it.
func (w *Wizard) SetApplicantCount(count int) {
	if count < pricing.MinApplicants {
		count = pricing.MinApplicants
	}
	if count > pricing.MaxApplicants {
		count = pricing.MaxApplicants
	}
	w.resize(count)
	w.travel.ApplicantCount = count
	if w.cursor >= count {
		w.cursor = count - 1
	}
}

func (w *Wizard) resize(count int) {
	applicants := make([]ApplicantData, count)
	passport := make([]*photos.Photo, count)
	portrait := make([]*photos.Photo, count)
	copy(applicants, w.applicants)
	copy(passport, w.passport)
	copy(portrait, w.portrait)
	w.applicants = applicants
	w.passport = passport
	w.portrait = portrait
}

// SetTravelDetails replaces the trip step. The applicant count still flows
// through SetApplicantCount so the slices stay in sync.
func (w *Wizard) SetTravelDetails(details TravelDetails) {
	count := details.ApplicantCount
	details.ApplicantCount = w.travel.ApplicantCount
	details.Purpose = NormalizePurpose(details.Purpose)
	w.travel = details
	if count != 0 {
		w.SetApplicantCount(count)
	}
	w.state = StateCollectingApplicant
}

// SetApplicant replaces one applicant form. Out-of-range indexes are ignored.
func (w *Wizard) SetApplicant(index int, data ApplicantData) {
	if index < 0 || index >= len(w.applicants) {
		return
	}
	w.applicants[index] = data
}

// GoToApplicant moves the cursor, clamped into range.
func (w *Wizard) GoToApplicant(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(w.applicants) {
		index = len(w.applicants) - 1
	}
	w.cursor = index
	w.state = StateCollectingApplicant
}

// SetContactInfo replaces the shared contact step.
func (w *Wizard) SetContactInfo(contact ContactInfo) {
	w.contact = contact
}

// SetConsents records the confirmation checkboxes.
func (w *Wizard) SetConsents(consents Consents) {
	w.consents = consents
	w.state = StateConfirmingTerms
}

// SetVisaSpeed selects the processing tier. Unknown tiers are kept as-is and
// resolved to the default by the pricing engine at submission.
func (w *Wizard) SetVisaSpeed(speedID string) {
	w.visaSpeed = speedID
}

// SetLanguage records the UI language, forwarded for email translations.
func (w *Wizard) SetLanguage(language string) {
	if language != "" {
		w.language = language
	}
}

// AttachPassportPhoto stores the passport scan for one applicant.
func (w *Wizard) AttachPassportPhoto(index int, photo *photos.Photo) {
	if index < 0 || index >= len(w.passport) {
		return
	}
	photo.Type = photos.TypePassport
	w.passport[index] = photo
}

// AttachPortraitPhoto stores the portrait for one applicant.
func (w *Wizard) AttachPortraitPhoto(index int, photo *photos.Photo) {
	if index < 0 || index >= len(w.portrait) {
		return
	}
	photo.Type = photos.TypePortrait
	w.portrait[index] = photo
}

// Submit validates the whole order and records it. Validation failures leave
// the wizard in a collecting state with the cursor on the first offending
// applicant and never reach the network. Photo uploads are dispatched after a
// successful submission and do not block the result.
func (w *Wizard) Submit(ctx context.Context, sessionID string) (*application.Result, error) {
	w.state = StateSubmitting
	w.lastError = nil

	if stdErr := w.validate(); stdErr != nil {
		w.state = StateCollectingApplicant
		w.lastError = stdErr
		return nil, stdErr
	}

	req := w.buildRequest()

	result, err := w.creator.Create(ctx, req)
	if err != nil {
		w.state = StateFailed
		stdErr := errors.NewSubmissionFailedError(err)
		w.lastError = stdErr
		metrics.ApplicationsFailed.WithLabelValues(string(errors.ErrCodeSubmissionFailed)).Inc()
		w.logger.WithError(err).Error("submission failed", map[string]interface{}{
			"applicantCount": len(w.applicants),
		})
		return nil, stdErr
	}

	if w.sessions != nil && sessionID != "" {
		keys := &session.Keys{
			ApplicationID:   result.ApplicationID,
			ReferenceNumber: result.ReferenceNumber,
			TotalAmount:     strconv.Itoa(result.Amount),
		}
		if err := w.sessions.SaveSubmission(ctx, sessionID, keys); err != nil {
			// Lookup by reference still works; the order itself is recorded.
			w.logger.WithError(err).Warn("failed to save session keys", map[string]interface{}{
				"referenceNumber": result.ReferenceNumber,
			})
		}
	}

	w.dispatchPhotos(result.ApplicantIDs)

	w.state = StateSubmitted
	w.result = result
	metrics.ApplicationsSubmitted.WithLabelValues(w.visaSpeed, w.travel.EntryType).Inc()
	w.logger.Info("application submitted", map[string]interface{}{
		"applicationId":   result.ApplicationID,
		"referenceNumber": result.ReferenceNumber,
		"amount":          result.Amount,
	})
	return result, nil
}

func (w *Wizard) dispatchPhotos(applicantIDs []string) {
	if w.uploader == nil {
		return
	}
	var pending []*photos.Photo
	for i, applicantID := range applicantIDs {
		if i < len(w.passport) && w.passport[i] != nil {
			w.passport[i].ApplicantID = applicantID
			pending = append(pending, w.passport[i])
		}
		if i < len(w.portrait) && w.portrait[i] != nil {
			w.portrait[i].ApplicantID = applicantID
			pending = append(pending, w.portrait[i])
		}
	}
	w.uploader.UploadAll(pending)
}

func (w *Wizard) buildRequest() *application.Request {
	applicants := make([]application.Applicant, len(w.applicants))
	for i, a := range w.applicants {
		applicants[i] = application.Applicant{
			FullName:              a.FullName,
			Nationality:           a.Nationality,
			PassportNumber:        a.PassportNumber,
			DateOfBirth:           a.DateOfBirth,
			Gender:                a.Gender,
			Religion:              a.Religion,
			PlaceOfBirth:          a.PlaceOfBirth,
			PassportType:          a.PassportType,
			PassportIssueDate:     a.DateOfIssue,
			PassportExpiry:        a.PassportExpiry,
			IssuingAuthority:      a.IssuingAuthority,
			PermanentAddress:      a.PermanentAddress,
			ContactAddress:        a.EffectiveContactAddress(),
			Telephone:             a.TelephoneNumber,
			EmergencyContactName:  a.EmergencyFullName,
			EmergencyAddress:      a.EmergencyAddress,
			EmergencyPhone:        a.EmergencyPhone,
			EmergencyRelationship: a.EmergencyRelationship,
			Email:                 w.contact.Email,
			Mobile:                w.contact.Mobile,
			WhatsApp:              w.contact.EffectiveWhatsApp(),
		}
	}

	return &application.Request{
		TripDetails: application.TripDetails{
			Applicants:       w.travel.ApplicantCount,
			Purpose:          NormalizePurpose(w.travel.Purpose),
			EntryPort:        w.travel.EntryPort,
			ExitPort:         w.travel.ExitPort,
			EntryDate:        w.travel.EntryDate,
			ExitDate:         w.travel.ExitDate,
			AddressInVietnam: w.travel.AddressInVietnam,
			CityProvince:     w.travel.CityProvince,
			FlightNumber:     w.travel.FlightNumber,
			EntryType:        w.travel.EntryType,
		},
		Applicants: applicants,
		Language:   w.language,
		VisaSpeed:  w.visaSpeed,
	}
}
