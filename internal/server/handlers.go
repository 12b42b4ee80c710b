// internal/server/handlers.go
package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"visa-platform/internal/ads/library"
	"visa-platform/internal/ads/templates"
	"visa-platform/internal/common/errors"
	"visa-platform/internal/common/metrics"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/countries"
	"visa-platform/internal/visa/lookup"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/pricing"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

// serviceType maps a campaign URL service slug like urgent-1h onto the
// pricing identifier URGENT_1H.
func serviceType(raw string) pricing.ServiceType {
	return pricing.ServiceType(strings.ReplaceAll(strings.ToUpper(raw), "-", "_"))
}

func errorCode(err error) errors.ErrorCode {
	var stdErr *errors.StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// ==========================
// Applications
// ==========================

// CreateApplication handles POST /api/applications. The payload is checked
// against the submission schema before decoding so the client gets every
// shape violation in one response.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if violations := validateSchema(applicationSchema, raw); len(violations) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "validation failed",
			"details": violations,
		})
		return
	}

	var req application.Request
	if err := json.Unmarshal(body, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	result, err := h.applications.Create(r.Context(), &req)
	if err != nil {
		stdErr, status := h.errs.Handle("application-submit", err)
		respondError(w, status, stdErr.Message)
		return
	}

	// Confirmation email and ops alert failures must not fail the submission.
	if h.mailer != nil && len(req.Applicants) > 0 {
		if err := h.mailer.SendConfirmation(r.Context(), req.Applicants[0].Email, result); err != nil {
			h.logger.Warn("confirmation email failed", map[string]interface{}{
				"applicationId": result.ApplicationID,
				"error":         err.Error(),
			})
		}
	}
	if h.alerter != nil {
		if err := h.alerter.NotifyUrgent(r.Context(), req.VisaSpeed, result); err != nil {
			h.logger.Warn("urgent order alert failed", map[string]interface{}{
				"applicationId": result.ApplicationID,
				"error":         err.Error(),
			})
		}
	}

	respondJSON(w, http.StatusCreated, result)
}

// LookupOrder handles GET /api/orders. Identifiers are tried in priority
// order: session_id, then payment_intent, then application_id.
func (h *Handler) LookupOrder(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := lookup.Params{
		SessionID:       q.Get("session_id"),
		PaymentIntentID: q.Get("payment_intent"),
		ApplicationID:   q.Get("application_id"),
	}

	summary, err := h.orders.Lookup(r.Context(), params)
	if err != nil {
		if errorCode(err) == errors.ErrCodeApplicationNotFound {
			respondError(w, http.StatusNotFound, "Application not found")
			return
		}
		stdErr, status := h.errs.Handle("order-lookup", err)
		respondError(w, status, stdErr.Message)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// ==========================
// Visa check and apply flow
// ==========================

// CheckVisaRequirement handles GET /api/visa-check?nationality=XX.
func (h *Handler) CheckVisaRequirement(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("nationality")
	if !countries.IsValidCode(code) {
		respondError(w, http.StatusBadRequest, "invalid country code")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"countryCode": strings.ToUpper(strings.TrimSpace(code)),
		"country":     countries.Name(code),
		"requirement": h.resolver.Resolve(code),
	})
}

// ApplyParameters handles GET /api/apply/params, echoing the landing page
// query contract with defaults resolved.
func (h *Handler) ApplyParameters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ParseApplyParams(r.URL.Query()))
}

// ==========================
// Pricing
// ==========================

// ListSpeeds handles GET /api/pricing/speeds.
func (h *Handler) ListSpeeds(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"speeds": h.engine.Speeds(),
	})
}

// PriceQuote handles GET /api/pricing/quote.
func (h *Handler) PriceQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count := 1
	if raw := q.Get("applicants"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "applicants must be a number")
			return
		}
		count = parsed
	}

	entryType := pricing.SingleEntry
	if q.Get("entryType") == string(pricing.MultipleEntry) {
		entryType = pricing.MultipleEntry
	}

	quote, err := h.engine.Price(q.Get("speed"), entryType, count)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

// ==========================
// Photo uploads
// ==========================

// UploadPhoto handles POST /api/upload with multipart fields file,
// applicantId, and type.
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	photoType := r.FormValue("type")
	if err := photos.ValidateType(photoType); err != nil {
		respondError(w, http.StatusBadRequest, "type must be passport or portrait")
		return
	}
	applicantID := r.FormValue("applicantId")
	if applicantID == "" {
		respondError(w, http.StatusBadRequest, "applicantId is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	photo := &photos.Photo{
		ApplicantID: applicantID,
		Type:        photoType,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	if err := h.photos.Save(r.Context(), photo); err != nil {
		metrics.PhotoUploads.WithLabelValues(photoType, "failure").Inc()
		h.logger.Error("photo upload failed", map[string]interface{}{
			"applicantId": applicantID,
			"photoType":   photoType,
			"error":       err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "failed to store photo")
		return
	}

	metrics.PhotoUploads.WithLabelValues(photoType, "success").Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"applicantId": applicantID,
		"type":        photoType,
		"filename":    header.Filename,
		"size":        len(data),
	})
}

// ==========================
// Ads
// ==========================

// GenerateAdCopy handles GET /api/ads/templates.
func (h *Handler) GenerateAdCopy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	price := 0
	if raw := q.Get("price"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "price must be a number")
			return
		}
		price = parsed
	}

	copyOut, err := h.ads.Generate(templates.Params{
		Language: templates.Language(q.Get("language")),
		Service:  serviceType(q.Get("service")),
		Airport:  q.Get("airport"),
		City:     q.Get("city"),
		Price:    price,
	})
	if err != nil {
		if errorCode(err) == errors.ErrCodeTemplateNotFound {
			respondError(w, http.StatusNotFound, "template not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to generate ad copy")
		return
	}
	respondJSON(w, http.StatusOK, copyOut)
}

// ValidateAdCopy handles POST /api/ads/validate.
func (h *Handler) ValidateAdCopy(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
		Service  string `json:"service"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	err := h.ads.Validate(templates.Language(payload.Language), serviceType(payload.Service))
	if err != nil {
		switch errorCode(err) {
		case errors.ErrCodeTemplateNotFound:
			respondError(w, http.StatusNotFound, "template not found")
		case errors.ErrCodeTemplateValidationFailed:
			respondJSON(w, http.StatusOK, map[string]interface{}{
				"valid":  false,
				"errors": err.Error(),
			})
		default:
			respondError(w, http.StatusInternalServerError, "failed to validate ad copy")
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"valid": true})
}

// ListAssets handles GET /api/ads/library.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.library.ListAssets(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}
	if assets == nil {
		assets = []library.Asset{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"assets": assets})
}

// ==========================
// Ad drafts
// ==========================

// ListDrafts handles GET /api/ads/drafts.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.library.ListDrafts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list drafts")
		return
	}
	if drafts == nil {
		drafts = []library.Draft{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"drafts": drafts})
}

// CreateDraft handles POST /api/ads/drafts.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if violations := validateSchema(draftSchema, raw); len(violations) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "validation failed",
			"details": violations,
		})
		return
	}

	var draft library.Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	created, err := h.library.CreateDraft(r.Context(), &draft)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create draft")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetDraft handles GET /api/ads/drafts/{id}.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	draft, err := h.library.GetDraft(r.Context(), id)
	if err != nil {
		if stderrors.Is(err, library.ErrDraftNotFound) {
			respondError(w, http.StatusNotFound, "Draft not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load draft")
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

// UpdateDraft handles PUT /api/ads/drafts/{id}.
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var draft library.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	draft.ID = id

	updated, err := h.library.UpdateDraft(r.Context(), &draft)
	if err != nil {
		if stderrors.Is(err, library.ErrDraftNotFound) {
			respondError(w, http.StatusNotFound, "Draft not found")
			return
		}
		if errorCode(err) == "BUSINESS_RULE_VIOLATION" {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to update draft")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteDrafts handles DELETE /api/ads/drafts with a JSON body listing ids.
func (h *Handler) DeleteDrafts(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	deleted, err := h.library.DeleteDrafts(r.Context(), payload.IDs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete drafts")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"deleted": deleted})
}
