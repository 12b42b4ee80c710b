// internal/visa/wizard/scan_test.go
package wizard

import (
	"testing"

	"visa-platform/internal/common/logger"

	"github.com/stretchr/testify/assert"
)

func TestWizard_ApplyScan(t *testing.T) {
	w := New(nil, nil, nil, logger.NewTestLogger(t))

	w.ApplyScan(PassportScan{
		FullName:       "JOHN SMITH",
		DateOfBirth:    "1990-05-12",
		Gender:         "Male",
		Nationality:    "US",
		PassportNumber: "X1234567",
		PassportExpiry: "2030-05-12",
	})

	got := w.Applicants()[0]
	assert.Equal(t, "JOHN SMITH", got.FullName)
	assert.Equal(t, "1990-05-12", got.DateOfBirth)
	assert.Equal(t, "US", got.Nationality)
	assert.Equal(t, "X1234567", got.PassportNumber)
	// Derived from nationality because the MRZ does not carry them.
	assert.Equal(t, "United States", got.PlaceOfBirth)
	assert.Equal(t, "US", got.IssuingAuthority)
}

func TestWizard_ApplyScan_DoesNotOverwriteDerivedFields(t *testing.T) {
	w := New(nil, nil, nil, logger.NewTestLogger(t))
	w.SetApplicant(0, ApplicantData{
		PlaceOfBirth:     "Hamburg",
		IssuingAuthority: "DE",
	})

	w.ApplyScan(PassportScan{Nationality: "US", IssuingAuthority: "GB"})

	got := w.Applicants()[0]
	assert.Equal(t, "US", got.Nationality)
	assert.Equal(t, "Hamburg", got.PlaceOfBirth)
	assert.Equal(t, "DE", got.IssuingAuthority)
}

func TestWizard_ApplyScan_BlankFieldsLeaveFormUntouched(t *testing.T) {
	w := New(nil, nil, nil, logger.NewTestLogger(t))
	w.SetApplicant(0, ApplicantData{FullName: "JANE DOE", Gender: "Female"})

	w.ApplyScan(PassportScan{PassportNumber: "Z7654321"})

	got := w.Applicants()[0]
	assert.Equal(t, "JANE DOE", got.FullName)
	assert.Equal(t, "Female", got.Gender)
	assert.Equal(t, "Z7654321", got.PassportNumber)
}

func TestWizard_ApplyScan_TargetsCurrentApplicant(t *testing.T) {
	w := New(nil, nil, nil, logger.NewTestLogger(t))
	w.SetApplicantCount(3)
	w.GoToApplicant(2)

	w.ApplyScan(PassportScan{FullName: "THIRD TRAVELLER"})

	assert.Empty(t, w.Applicants()[0].FullName)
	assert.Equal(t, "THIRD TRAVELLER", w.Applicants()[2].FullName)
}

func TestTravelDetails_StayDuration(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		exit  string
		want  int
	}{
		{name: "two week trip", entry: "2026-10-01", exit: "2026-10-15", want: 14},
		{name: "same day", entry: "2026-10-01", exit: "2026-10-01", want: 0},
		{name: "exit before entry", entry: "2026-10-15", exit: "2026-10-01", want: 0},
		{name: "missing exit", entry: "2026-10-01", exit: "", want: 0},
		{name: "malformed entry", entry: "01/10/2026", exit: "2026-10-15", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := TravelDetails{EntryDate: tt.entry, ExitDate: tt.exit}
			assert.Equal(t, tt.want, details.StayDuration())
		})
	}
}
