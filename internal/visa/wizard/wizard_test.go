// internal/visa/wizard/wizard_test.go
package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeCreator struct {
	calls   int
	lastReq *application.Request
	result  *application.Result
	err     error
}

func (f *fakeCreator) Create(_ context.Context, req *application.Request) (*application.Result, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	ids := make([]string, len(req.Applicants))
	for i := range ids {
		ids[i] = "applicant-" + string(rune('a'+i))
	}
	return &application.Result{
		ApplicationID:   "app-1",
		ReferenceNumber: "VN-ABCD1234",
		ApplicantIDs:    ids,
		Amount:          387,
	}, nil
}

type fakeSessions struct {
	mu    sync.Mutex
	saved map[string]*session.Keys
	err   error
}

func (f *fakeSessions) SaveSubmission(_ context.Context, sessionID string, keys *session.Keys) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == nil {
		f.saved = make(map[string]*session.Keys)
	}
	f.saved[sessionID] = keys
	return f.err
}

type recordingSink struct {
	mu    sync.Mutex
	saved []*photos.Photo
}

func (r *recordingSink) Save(_ context.Context, photo *photos.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, photo)
	return nil
}

func validApplicant() ApplicantData {
	return ApplicantData{
		FullName:              "John Doe",
		Nationality:           "US",
		PassportNumber:        "A1234567",
		DateOfBirth:           "1990-01-15",
		PassportExpiry:        "2030-01-15",
		Gender:                "male",
		Religion:              "none",
		PlaceOfBirth:          "New York",
		PassportType:          "ordinary",
		PermanentAddress:      "1 Main St",
		ContactAddress:        "1 Main St",
		TelephoneNumber:       "+12025550100",
		EmergencyFullName:     "Jane Doe",
		EmergencyAddress:      "1 Main St",
		EmergencyPhone:        "+12025550101",
		EmergencyRelationship: "spouse",
	}
}

func validTravel(count int) TravelDetails {
	return TravelDetails{
		ApplicantCount:   count,
		Purpose:          "tourist",
		EntryDate:        "2026-10-01",
		ExitDate:         "2026-10-15",
		EntryPort:        "SGN",
		ExitPort:         "HAN",
		AddressInVietnam: "12 Le Loi",
		CityProvince:     "Ho Chi Minh City",
		EntryType:        "multiple",
	}
}

func validContact() ContactInfo {
	return ContactInfo{
		Email:                "john@example.com",
		ConfirmEmail:         "john@example.com",
		Mobile:               "+12025550100",
		WhatsAppSameAsMobile: true,
	}
}

func allConsents() Consents {
	return Consents{InfoConfirmed: true, AgreedToTerms: true, AgreedToPrivacy: true}
}

func newReadyWizard(t *testing.T, creator application.Creator, applicantCount int) *Wizard {
	w := New(creator, nil, &fakeSessions{}, logger.NewTestLogger(t))
	w.SetTravelDetails(validTravel(applicantCount))
	for i := 0; i < applicantCount; i++ {
		w.SetApplicant(i, validApplicant())
	}
	w.SetContactInfo(validContact())
	w.SetConsents(allConsents())
	w.SetVisaSpeed("1-day")
	return w
}

// ==========================
// Applicant Count Tests
// ==========================

func TestWizard_SetApplicantCount(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())

	w.SetApplicantCount(3)
	assert.Len(t, w.Applicants(), 3)
	assert.Equal(t, 3, w.Travel().ApplicantCount)

	// Shrinking preserves the surviving forms.
	w.SetApplicant(0, validApplicant())
	w.SetApplicant(1, ApplicantData{FullName: "Second"})
	w.SetApplicantCount(2)
	assert.Len(t, w.Applicants(), 2)
	assert.Equal(t, "John Doe", w.Applicants()[0].FullName)
	assert.Equal(t, "Second", w.Applicants()[1].FullName)

	// Growing back yields a fresh form, not the old data.
	w.SetApplicantCount(3)
	assert.Empty(t, w.Applicants()[2].FullName)
}

func TestWizard_SetApplicantCount_Clamps(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())

	w.SetApplicantCount(0)
	assert.Len(t, w.Applicants(), 1)

	w.SetApplicantCount(-5)
	assert.Len(t, w.Applicants(), 1)

	w.SetApplicantCount(25)
	assert.Len(t, w.Applicants(), 10)
	assert.Equal(t, 10, w.Travel().ApplicantCount)
}

func TestWizard_SetApplicantCount_ClampsCursor(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())

	w.SetApplicantCount(5)
	w.GoToApplicant(4)
	require.Equal(t, 4, w.CurrentApplicant())

	w.SetApplicantCount(2)
	assert.Equal(t, 1, w.CurrentApplicant())
}

func TestWizard_GoToApplicant_Clamps(t *testing.T) {
	w := New(&fakeCreator{}, nil, nil, logger.NewNoOpLogger())
	w.SetApplicantCount(3)

	w.GoToApplicant(-1)
	assert.Equal(t, 0, w.CurrentApplicant())

	w.GoToApplicant(99)
	assert.Equal(t, 2, w.CurrentApplicant())
}

// ==========================
// Submission Tests
// ==========================

func TestWizard_Submit_Success(t *testing.T) {
	creator := &fakeCreator{}
	sessions := &fakeSessions{}
	w := New(creator, nil, sessions, logger.NewTestLogger(t))
	w.SetTravelDetails(validTravel(3))
	for i := 0; i < 3; i++ {
		w.SetApplicant(i, validApplicant())
	}
	w.SetContactInfo(validContact())
	w.SetConsents(allConsents())
	w.SetVisaSpeed("1-day")

	result, err := w.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, StateSubmitted, w.State())
	assert.Equal(t, "VN-ABCD1234", result.ReferenceNumber)
	assert.Equal(t, 1, creator.calls)

	// Session keys exposed to the payment flow.
	require.Contains(t, sessions.saved, "sess-1")
	assert.Equal(t, "app-1", sessions.saved["sess-1"].ApplicationID)
	assert.Equal(t, "387", sessions.saved["sess-1"].TotalAmount)
}

func TestWizard_Submit_EmailMismatch_NoNetworkCall(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 2)
	w.GoToApplicant(1)
	contact := validContact()
	contact.ConfirmEmail = "other@example.com"
	w.SetContactInfo(contact)

	result, err := w.Submit(context.Background(), "sess-1")
	assert.Nil(t, result)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeEmailMismatch, stdErr.Code)
	assert.Zero(t, creator.calls, "submission must abort before any network call")
	assert.Equal(t, 0, w.CurrentApplicant())
	assert.NotEqual(t, StateSubmitted, w.State())
}

func TestWizard_Submit_TermsNotAccepted(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 1)
	w.SetConsents(Consents{InfoConfirmed: true, AgreedToTerms: true, AgreedToPrivacy: false})

	_, err := w.Submit(context.Background(), "sess-1")

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeTermsNotAccepted, stdErr.Code)
	assert.Zero(t, creator.calls)
}

func TestWizard_Submit_RelocatesCursorToFirstInvalidApplicant(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 4)
	w.GoToApplicant(3)

	// Break applicants 1 and 2; cursor must land on 1.
	broken := validApplicant()
	broken.PassportNumber = ""
	w.SetApplicant(1, broken)
	broken2 := validApplicant()
	broken2.FullName = ""
	w.SetApplicant(2, broken2)

	_, err := w.Submit(context.Background(), "sess-1")

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeApplicationValidationFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "applicant 2")
	assert.Equal(t, 1, w.CurrentApplicant())
	assert.Zero(t, creator.calls)
}

func TestWizard_Submit_TravelValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TravelDetails)
		detail string
	}{
		{
			name:   "missing dates",
			mutate: func(td *TravelDetails) { td.EntryDate = "" },
			detail: "entry and exit dates",
		},
		{
			name:   "missing checkpoint",
			mutate: func(td *TravelDetails) { td.ExitPort = "" },
			detail: "checkpoints are required",
		},
		{
			name:   "unknown checkpoint",
			mutate: func(td *TravelDetails) { td.EntryPort = "XXX" },
			detail: "unknown entry or exit checkpoint",
		},
		{
			name:   "missing address",
			mutate: func(td *TravelDetails) { td.AddressInVietnam = "" },
			detail: "temporary address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			w := newReadyWizard(t, creator, 1)
			travel := validTravel(1)
			tt.mutate(&travel)
			w.SetTravelDetails(travel)

			_, err := w.Submit(context.Background(), "sess-1")

			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, errors.ErrCodeApplicationValidationFailed, stdErr.Code)
			assert.Contains(t, stdErr.Details, tt.detail)
			assert.Zero(t, creator.calls)
		})
	}
}

func TestWizard_Submit_ContactAddressSameAsPermanent(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 1)

	applicant := validApplicant()
	applicant.ContactAddress = ""
	applicant.ContactAddressSameAsPermanent = true
	w.SetApplicant(0, applicant)

	_, err := w.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "1 Main St", creator.lastReq.Applicants[0].ContactAddress)
}

func TestWizard_Submit_WhatsAppSameAsMobile(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 1)

	_, err := w.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "+12025550100", creator.lastReq.Applicants[0].WhatsApp)
}

func TestWizard_Submit_NormalizesPurpose(t *testing.T) {
	creator := &fakeCreator{}
	w := newReadyWizard(t, creator, 1)
	travel := validTravel(1)
	travel.Purpose = "smuggling"
	w.SetTravelDetails(travel)

	_, err := w.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "tourist", creator.lastReq.TripDetails.Purpose)
}

func TestWizard_Submit_CreatorFailure(t *testing.T) {
	creator := &fakeCreator{err: assert.AnError}
	w := newReadyWizard(t, creator, 1)

	result, err := w.Submit(context.Background(), "sess-1")
	assert.Nil(t, result)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeSubmissionFailed, stdErr.Code)
	assert.Equal(t, StateFailed, w.State())
	assert.Equal(t, stdErr, w.LastError())
}

func TestWizard_Submit_DispatchesPhotos(t *testing.T) {
	creator := &fakeCreator{}
	sink := &recordingSink{}
	uploader := photos.NewUploader(sink, time.Second, logger.NewNoOpLogger())

	w := New(creator, uploader, &fakeSessions{}, logger.NewTestLogger(t))
	w.SetTravelDetails(validTravel(2))
	w.SetApplicant(0, validApplicant())
	w.SetApplicant(1, validApplicant())
	w.SetContactInfo(validContact())
	w.SetConsents(allConsents())

	w.AttachPassportPhoto(0, &photos.Photo{Filename: "p0.jpg", Data: []byte("x")})
	w.AttachPortraitPhoto(0, &photos.Photo{Filename: "f0.jpg", Data: []byte("x")})
	w.AttachPassportPhoto(1, &photos.Photo{Filename: "p1.jpg", Data: []byte("x")})

	_, err := w.Submit(context.Background(), "sess-1")
	require.NoError(t, err)

	// Uploads run in the background; give them a moment.
	assert.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.saved) == 3
	}, 2*time.Second, 10*time.Millisecond)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for _, p := range sink.saved {
		assert.NotEmpty(t, p.ApplicantID, "photos must be tagged with backend applicant ids")
	}
}

// ==========================
// Catalog Tests
// ==========================

func TestIsKnownEntryPort(t *testing.T) {
	assert.True(t, IsKnownEntryPort("SGN"))
	assert.True(t, IsKnownEntryPort("MOCLB"))
	assert.True(t, IsKnownEntryPort("QUASP"))
	assert.False(t, IsKnownEntryPort("JFK"))
	assert.False(t, IsKnownEntryPort(""))
}

func TestNormalizePurpose(t *testing.T) {
	assert.Equal(t, "tourist", NormalizePurpose("tourist"))
	assert.Equal(t, "business", NormalizePurpose("business"))
	assert.Equal(t, "visiting", NormalizePurpose("visiting"))
	assert.Equal(t, "tourist", NormalizePurpose("holiday"))
	assert.Equal(t, "tourist", NormalizePurpose(""))
}
