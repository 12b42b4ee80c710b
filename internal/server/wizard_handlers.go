// internal/server/wizard_handlers.go
package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"visa-platform/internal/common/errors"
	"visa-platform/internal/visa/application"
	"visa-platform/internal/visa/photos"
	"visa-platform/internal/visa/wizard"

	"github.com/gorilla/mux"
)

// ==========================
// Application wizard
// ==========================

// StartWizard handles POST /api/wizard. Landing-page query parameters seed
// the new session the same way the apply page reads them.
func (h *Handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	if h.wizards == nil {
		respondError(w, http.StatusServiceUnavailable, "wizard sessions unavailable")
		return
	}

	params := ParseApplyParams(r.URL.Query())
	id := h.wizards.Create()

	var snap wizard.Snapshot
	_ = h.wizards.Do(id, func(wz *wizard.Wizard) error {
		wz.Seed(params.Flight, params.Nationality, params.Purpose, params.EntryPort, params.Speed)
		snap = wz.Snapshot()
		return nil
	})

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"sessionId": id,
		"wizard":    snap,
	})
}

// withWizard runs fn against the session named in the route and responds with
// the resulting snapshot.
func (h *Handler) withWizard(w http.ResponseWriter, r *http.Request, fn func(*wizard.Wizard) error) {
	if h.wizards == nil {
		respondError(w, http.StatusServiceUnavailable, "wizard sessions unavailable")
		return
	}

	id := mux.Vars(r)["id"]
	var snap wizard.Snapshot
	err := h.wizards.Do(id, func(wz *wizard.Wizard) error {
		if err := fn(wz); err != nil {
			return err
		}
		snap = wz.Snapshot()
		return nil
	})
	if err != nil {
		if stderrors.Is(err, wizard.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "Wizard session not found")
			return
		}
		stdErr, status := h.errs.Handle("wizard-update", err)
		respondError(w, status, stdErr.Message)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// WizardState handles GET /api/wizard/{id}.
func (h *Handler) WizardState(w http.ResponseWriter, r *http.Request) {
	h.withWizard(w, r, func(*wizard.Wizard) error { return nil })
}

// SetWizardTrip handles PUT /api/wizard/{id}/trip.
func (h *Handler) SetWizardTrip(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		wizard.TravelDetails
		VisaSpeed string `json:"visaSpeed"`
		Language  string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		wz.SetTravelDetails(payload.TravelDetails)
		if payload.VisaSpeed != "" {
			wz.SetVisaSpeed(payload.VisaSpeed)
		}
		wz.SetLanguage(payload.Language)
		return nil
	})
}

// SetWizardApplicant handles PUT /api/wizard/{id}/applicants/{index}.
func (h *Handler) SetWizardApplicant(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "applicant index must be a number")
		return
	}

	var data wizard.ApplicantData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		if index < 0 || index >= len(wz.Applicants()) {
			return errors.NewApplicationValidationFailedError(
				fmt.Sprintf("applicant index %d out of range", index))
		}
		wz.SetApplicant(index, data)
		wz.GoToApplicant(index)
		return nil
	})
}

// SetWizardContact handles PUT /api/wizard/{id}/contact.
func (h *Handler) SetWizardContact(w http.ResponseWriter, r *http.Request) {
	var contact wizard.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		wz.SetContactInfo(contact)
		return nil
	})
}

// SetWizardConsents handles PUT /api/wizard/{id}/consents.
func (h *Handler) SetWizardConsents(w http.ResponseWriter, r *http.Request) {
	var consents wizard.Consents
	if err := json.NewDecoder(r.Body).Decode(&consents); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		wz.SetConsents(consents)
		return nil
	})
}

// AttachWizardPhoto handles POST /api/wizard/{id}/photos with multipart
// fields file, applicantIndex, and type. Photos stay with the session until
// submission succeeds, then upload under the real applicant ids.
func (h *Handler) AttachWizardPhoto(w http.ResponseWriter, r *http.Request) {
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
	index, err := strconv.Atoi(r.FormValue("applicantIndex"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "applicantIndex must be a number")
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
		Type:        photoType,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	h.withWizard(w, r, func(wz *wizard.Wizard) error {
		if index < 0 || index >= len(wz.Applicants()) {
			return errors.NewApplicationValidationFailedError(
				fmt.Sprintf("applicant index %d out of range", index))
		}
		if photoType == photos.TypePassport {
			wz.AttachPassportPhoto(index, photo)
		} else {
			wz.AttachPortraitPhoto(index, photo)
		}
		return nil
	})
}

// SubmitWizard handles POST /api/wizard/{id}/submit. The wizard session id
// doubles as the key the payment page uses to read the submission back.
func (h *Handler) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	if h.wizards == nil {
		respondError(w, http.StatusServiceUnavailable, "wizard sessions unavailable")
		return
	}

	id := mux.Vars(r)["id"]
	var result *application.Result
	err := h.wizards.Do(id, func(wz *wizard.Wizard) error {
		res, err := wz.Submit(r.Context(), id)
		result = res
		return err
	})
	if err != nil {
		if stderrors.Is(err, wizard.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "Wizard session not found")
			return
		}
		stdErr, status := h.errs.Handle("wizard-submit", err)
		respondError(w, status, stdErr.Message)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}
