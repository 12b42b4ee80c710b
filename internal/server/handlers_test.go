// internal/server/handlers_test.go
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"visa-platform/internal/ads/library"
	"visa-platform/internal/ads/templates"
	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/logger"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/countries"
	"visa-platform/internal/visa/lookup"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/pricing"
	"visa-platform/internal/visa/wizard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fakes
// ==========================

type fakeCreator struct {
	lastReq *application.Request
	result  *application.Result
	err     error
}

func (f *fakeCreator) Create(_ context.Context, req *application.Request) (*application.Result, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeOrders struct {
	lastParams lookup.Params
	summary    *application.Summary
	err        error
}

func (f *fakeOrders) Lookup(_ context.Context, p lookup.Params) (*application.Summary, error) {
	f.lastParams = p
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

type fakeSink struct {
	mu    sync.Mutex
	saved []*photos.Photo
	err   error
}

func (f *fakeSink) Save(_ context.Context, photo *photos.Photo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, photo)
	return nil
}

func newTestHandler(t *testing.T) (*Handler, *fakeCreator, *fakeOrders, *fakeSink, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.NewTestLogger(t)
	creator := &fakeCreator{result: &application.Result{
		ApplicationID:   "app-1",
		ReferenceNumber: "VN-20260801-ABCD",
		ApplicantIDs:    []string{"appl-1"},
		Amount:          199,
	}}
	orders := &fakeOrders{}
	sink := &fakeSink{}

	h := NewHandler(
		creator,
		nil,
		orders,
		countries.NewResolver(countries.DefaultTables(), log),
		pricing.NewEngine(pricing.DefaultSpeeds(), log),
		templates.NewSelector(log),
		library.NewStore(db, log),
		sink,
		log,
	).WithWizards(wizard.NewManager(creator, photos.NewUploader(sink, time.Second, log), nil, 0, log))
	return h, creator, orders, sink, mock
}

func doRequest(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	SetupRouter(h).ServeHTTP(rec, req)
	return rec
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"tripDetails": map[string]interface{}{
			"applicants": 1,
			"purpose":    "tourist",
			"entryPort":  "SGN",
			"entryDate":  "2026-10-01",
			"exitDate":   "2026-10-15",
		},
		"applicants": []interface{}{
			map[string]interface{}{
				"fullName":       "JOHN SMITH",
				"nationality":    "US",
				"passportNumber": "X1234567",
				"email":          "john@example.com",
			},
		},
		"visaSpeed": "30-min",
	}
}

// ==========================
// Application Tests
// ==========================

func TestCreateApplication(t *testing.T) {
	h, creator, _, _, _ := newTestHandler(t)

	body, _ := json.Marshal(validSubmission())
	rec := doRequest(h, http.MethodPost, "/api/applications", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var result application.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "app-1", result.ApplicationID)
	assert.Equal(t, "VN-20260801-ABCD", result.ReferenceNumber)
	require.NotNil(t, creator.lastReq)
	assert.Equal(t, "30-min", creator.lastReq.VisaSpeed)
}

func TestCreateApplication_SchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]interface{})
	}{
		{
			name:   "missing visaSpeed",
			mutate: func(m map[string]interface{}) { delete(m, "visaSpeed") },
		},
		{
			name:   "empty applicants array",
			mutate: func(m map[string]interface{}) { m["applicants"] = []interface{}{} },
		},
		{
			name: "applicant count out of range",
			mutate: func(m map[string]interface{}) {
				m["tripDetails"].(map[string]interface{})["applicants"] = 11
			},
		},
		{
			name: "applicant missing email",
			mutate: func(m map[string]interface{}) {
				delete(m["applicants"].([]interface{})[0].(map[string]interface{}), "email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, creator, _, _, _ := newTestHandler(t)

			payload := validSubmission()
			tt.mutate(payload)
			body, _ := json.Marshal(payload)

			rec := doRequest(h, http.MethodPost, "/api/applications", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, creator.lastReq, "invalid payload must not reach the service")
			assert.Contains(t, rec.Body.String(), "details")
		})
	}
}

func TestCreateApplication_InvalidJSON(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/applications", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateApplication_ServiceFailure(t *testing.T) {
	h, creator, _, _, _ := newTestHandler(t)
	creator.err = errors.NewDatabaseInsertFailedError(assert.AnError)

	body, _ := json.Marshal(validSubmission())
	rec := doRequest(h, http.MethodPost, "/api/applications", body)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ==========================
// Order Lookup Tests
// ==========================

func TestLookupOrder(t *testing.T) {
	h, _, orders, _, _ := newTestHandler(t)
	orders.summary = &application.Summary{
		ApplicationID:   "app-1",
		ReferenceNumber: "VN-20260801-ABCD",
		Status:          "paid",
		VisaSpeed:       "30-min",
		ApplicantCount:  2,
		Amount:          398,
		CreatedAt:       time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	rec := doRequest(h, http.MethodGet, "/api/orders?session_id=cs_123&application_id=app-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cs_123", orders.lastParams.SessionID)
	assert.Equal(t, "app-1", orders.lastParams.ApplicationID)
	var summary application.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "VN-20260801-ABCD", summary.ReferenceNumber)
}

func TestLookupOrder_NotFound(t *testing.T) {
	h, _, orders, _, _ := newTestHandler(t)
	orders.err = errors.NewApplicationNotFoundError("no identifiers matched")

	rec := doRequest(h, http.MethodGet, "/api/orders?application_id=missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Application not found"}`, rec.Body.String())
}

func TestLookupOrder_UpstreamFailure(t *testing.T) {
	h, _, orders, _, _ := newTestHandler(t)
	orders.err = errors.NewPaymentLookupFailedError(assert.AnError)

	rec := doRequest(h, http.MethodGet, "/api/orders?session_id=cs_123", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// ==========================
// Visa Check Tests
// ==========================

func TestCheckVisaRequirement(t *testing.T) {
	tests := []struct {
		name        string
		nationality string
		wantStatus  int
		wantType    string
		wantCountry string
	}{
		{name: "visa free 45 days", nationality: "DE", wantStatus: http.StatusOK, wantType: "visa_free", wantCountry: "Germany"},
		{name: "e-visa eligible", nationality: "us", wantStatus: http.StatusOK, wantType: "evisa", wantCountry: "United States"},
		{name: "embassy default", nationality: "AF", wantStatus: http.StatusOK, wantType: "embassy_required", wantCountry: "Afghanistan"},
		{name: "invalid code", nationality: "USA", wantStatus: http.StatusBadRequest},
		{name: "missing code", nationality: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _, _ := newTestHandler(t)

			rec := doRequest(h, http.MethodGet, "/api/visa-check?nationality="+tt.nationality, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Country     string `json:"country"`
				CountryCode string `json:"countryCode"`
				Requirement struct {
					Type string `json:"type"`
				} `json:"requirement"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantType, resp.Requirement.Type)
			assert.Equal(t, tt.wantCountry, resp.Country)
		})
	}
}

// ==========================
// Apply Params and Pricing Tests
// ==========================

func TestApplyParameters(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/apply/params?flight=VN123&purpose=smuggling&speed=bogus", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var params ApplyParams
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
	assert.Equal(t, "VN123", params.Flight)
	assert.Equal(t, "tourist", params.Purpose)
	assert.Equal(t, "30-min", params.Speed)
}

func TestListSpeeds(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/pricing/speeds", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Speeds []pricing.SpeedTier `json:"speeds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Speeds, 5)
	assert.Equal(t, "30-min", resp.Speeds[0].ID)
}

func TestPriceQuote(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/pricing/quote?speed=1-day&entryType=multiple&applicants=3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var quote pricing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 387, quote.TotalAmount)
}

func TestPriceQuote_InvalidApplicantCount(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/pricing/quote?speed=1-day&applicants=11", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ==========================
// Upload Tests
// ==========================

func multipartBody(t *testing.T, fields map[string]string, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	h, _, _, sink, _ := newTestHandler(t)

	buf, contentType := multipartBody(t, map[string]string{
		"applicantId": "appl-1",
		"type":        "passport",
	}, "passport.jpg", []byte("fake image bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	SetupRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sink.saved, 1)
	assert.Equal(t, "appl-1", sink.saved[0].ApplicantID)
	assert.Equal(t, "passport", sink.saved[0].Type)
	assert.Equal(t, []byte("fake image bytes"), sink.saved[0].Data)
}

func TestUploadPhoto_InvalidType(t *testing.T) {
	h, _, _, sink, _ := newTestHandler(t)

	buf, contentType := multipartBody(t, map[string]string{
		"applicantId": "appl-1",
		"type":        "selfie",
	}, "selfie.jpg", []byte("x"))

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	SetupRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sink.saved)
}

func TestUploadPhoto_MissingFile(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	buf, contentType := multipartBody(t, map[string]string{
		"applicantId": "appl-1",
		"type":        "portrait",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", buf)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	SetupRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ==========================
// Ads Tests
// ==========================

func TestGenerateAdCopy(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/ads/templates?language=en&service=urgent-1h&airport=JFK&price=299", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var copyOut templates.AdCopy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &copyOut))
	assert.Contains(t, copyOut.Headlines, "JFK Vietnam Visa")
	assert.Equal(t, "https://vietnamvisahelp.com/apply?service=urgent-1h&airport=JFK", copyOut.FinalURL)
}

func TestGenerateAdCopy_UnknownService(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/ads/templates?language=en&service=overnight", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateAdCopy(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/ads/validate",
		[]byte(`{"language": "en", "service": "standard"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestValidateAdCopy_ReportsViolations(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/ads/validate",
		[]byte(`{"language": "en", "service": "urgent-1h"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

// ==========================
// Draft Route Tests
// ==========================

func TestCreateDraftRoute(t *testing.T) {
	h, _, _, _, mock := newTestHandler(t)

	mock.ExpectExec("INSERT INTO ad_drafts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := doRequest(h, http.MethodPost, "/api/ads/drafts",
		[]byte(`{"format": "post", "imageUrls": ["https://cdn.example.com/1.png"], "caption": "Visa in 1 hour"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	var draft library.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, library.StatusDraft, draft.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDraftRoute_SchemaViolation(t *testing.T) {
	h, _, _, _, mock := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/ads/drafts",
		[]byte(`{"format": "banner", "imageUrls": []}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet(), "invalid draft must not reach the database")
}

func TestGetDraftRoute_NotFound(t *testing.T) {
	h, _, _, _, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT id, format, image_urls").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "format", "image_urls", "video_url", "caption", "hashtags", "status", "created_at", "updated_at",
		}))

	rec := doRequest(h, http.MethodGet, "/api/ads/drafts/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Draft not found"}`, rec.Body.String())
}

func TestDeleteDraftsRoute(t *testing.T) {
	h, _, _, _, mock := newTestHandler(t)

	mock.ExpectExec("DELETE FROM ad_drafts").
		WillReturnResult(sqlmock.NewResult(0, 2))

	rec := doRequest(h, http.MethodDelete, "/api/ads/drafts",
		[]byte(`{"ids": ["d-1", "d-2", "missing"]}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted": 2}`, rec.Body.String())
}

// ==========================
// Infrastructure Tests
// ==========================

func TestHealthCheck(t *testing.T) {
	h, _, _, _, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	h, creator, _, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/applications", nil)
	rec := httptest.NewRecorder()
	SetupRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Nil(t, creator.lastReq)
}

func TestRespondError_Shape(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusTeapot, "nope")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), `"error":"nope"`))
}
