// internal/visa/wizard/validate.go
package wizard

import (
	"fmt"

	"visa-platform/internal/common/errors"
)

// validate runs the ordered submission checks: consents, then trip details,
// then every applicant, then contact info. The first applicant failure moves
// the cursor to the offending form.
func (w *Wizard) validate() *errors.StandardError {
	if !w.consents.InfoConfirmed {
		return errors.NewTermsNotAcceptedError()
	}
	if !w.consents.AgreedToTerms || !w.consents.AgreedToPrivacy {
		return errors.NewTermsNotAcceptedError()
	}

	if stdErr := w.validateTravel(); stdErr != nil {
		return stdErr
	}

	for i := range w.applicants {
		if missing := missingApplicantField(&w.applicants[i]); missing != "" {
			w.cursor = i
			return errors.NewApplicationValidationFailedError(
				fmt.Sprintf("applicant %d: %s is required", i+1, missing))
		}
	}

	return w.validateContact()
}

func (w *Wizard) validateTravel() *errors.StandardError {
	t := &w.travel
	switch {
	case t.EntryDate == "" || t.ExitDate == "":
		return errors.NewApplicationValidationFailedError("entry and exit dates are required")
	case t.EntryPort == "" || t.ExitPort == "":
		return errors.NewApplicationValidationFailedError("entry and exit checkpoints are required")
	case !IsKnownEntryPort(t.EntryPort) || !IsKnownEntryPort(t.ExitPort):
		return errors.NewApplicationValidationFailedError("unknown entry or exit checkpoint")
	case t.AddressInVietnam == "" || t.CityProvince == "":
		return errors.NewApplicationValidationFailedError("temporary address in Vietnam is required")
	}
	return nil
}

// missingApplicantField returns the first required field that is empty, or ""
// when the form is complete. The contact address requirement respects the
// same-as-permanent checkbox.
func missingApplicantField(a *ApplicantData) string {
	checks := []struct {
		value string
		field string
	}{
		{a.FullName, "fullName"},
		{a.Nationality, "nationality"},
		{a.PassportNumber, "passportNumber"},
		{a.DateOfBirth, "dateOfBirth"},
		{a.Gender, "gender"},
		{a.Religion, "religion"},
		{a.PlaceOfBirth, "placeOfBirth"},
		{a.PassportType, "passportType"},
		{a.PermanentAddress, "permanentAddress"},
		{a.EffectiveContactAddress(), "contactAddress"},
		{a.TelephoneNumber, "telephoneNumber"},
		{a.EmergencyFullName, "emergencyFullName"},
		{a.EmergencyAddress, "emergencyAddress"},
		{a.EmergencyPhone, "emergencyPhone"},
		{a.EmergencyRelationship, "emergencyRelationship"},
	}
	for _, c := range checks {
		if c.value == "" {
			return c.field
		}
	}
	return ""
}

func (w *Wizard) validateContact() *errors.StandardError {
	if w.contact.Email == "" || w.contact.Mobile == "" {
		w.cursor = 0
		return errors.NewApplicationValidationFailedError("email and mobile phone number are required")
	}
	if w.contact.Email != w.contact.ConfirmEmail {
		w.cursor = 0
		return errors.NewEmailMismatchError()
	}
	return nil
}
