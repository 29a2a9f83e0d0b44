package screens

import (
	"strings"
	"testing"

	"github.com/sanrach0178/Viksit-Health/internal/catalog"
	"github.com/sanrach0178/Viksit-Health/internal/reporting"
)

func TestDoctorsScreen_FlattensDoctorSlotPairs(t *testing.T) {
	hospital := catalog.Hospital{ID: 1, Name: "AIIMS"}
	doctors := []catalog.Doctor{
		{ID: 1, Name: "Dr. A", AvailableSlots: []string{"9:00 AM", "10:00 AM"}, HospitalID: 1},
		{ID: 2, Name: "Dr. B", AvailableSlots: []string{"1:00 PM"}, HospitalID: 1},
	}

	s := NewDoctorsScreen(hospital, doctors)
	if len(s.choices) != 3 {
		t.Fatalf("flattened %d choices, want 3", len(s.choices))
	}

	s.choice = 2
	doctorID, slot := s.Choice()
	if doctorID != 2 || slot != "1:00 PM" {
		t.Errorf("Choice() = %d/%q, want 2/1:00 PM", doctorID, slot)
	}
}

func TestDoctorsScreen_EmptyCandidateSetOnlyOffersBack(t *testing.T) {
	s := NewDoctorsScreen(catalog.Hospital{ID: 2, Name: "Central"}, nil)

	if s.form != nil {
		t.Error("empty candidate set built a selection form")
	}
	if !strings.Contains(s.View(), "No doctors") {
		t.Error("empty candidate view does not explain itself")
	}
}

func TestHospitalsScreen_SelectedTracksCursor(t *testing.T) {
	hospitals := catalog.Default().Hospitals()
	s := NewHospitalsScreen(hospitals, catalog.Prediction{Department: "General Medicine"})

	h, ok := s.Selected()
	if !ok || h.ID != hospitals[0].ID {
		t.Errorf("Selected() = %+v, want first hospital", h)
	}
}

func TestHospitalsScreen_ViewShowsPrediction(t *testing.T) {
	s := NewHospitalsScreen(catalog.Default().Hospitals(), catalog.Prediction{
		Department:        "General Medicine",
		WaitingTime:       "15-20 minutes",
		ConfidencePercent: 92,
	})

	view := s.View()
	for _, want := range []string{"General Medicine", "15-20 minutes", "92%"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
}

func TestQueueScreen_SelectedReturnsFalseWhenEmpty(t *testing.T) {
	s := NewQueueScreen(nil)
	if _, ok := s.Selected(); ok {
		t.Error("Selected() reported a patient for an empty queue")
	}
}

func TestAdminScreen_DoctorsPanelListsRoster(t *testing.T) {
	store := catalog.Default()
	dash := reporting.NewDashboard(store)
	s := NewAdminScreen(store, dash)

	dash.SelectView(reporting.ViewDoctors)
	view := s.View()
	for _, want := range []string{"Dr. Mrinal", "Dr. Priya Sharma", "Dr. Kashish"} {
		if !strings.Contains(view, want) {
			t.Errorf("doctors panel missing %q", want)
		}
	}
}

func TestConsultationScreen_ShowsOptionalSections(t *testing.T) {
	patient, _ := catalog.Default().Patient(1)
	s := NewConsultationScreen(patient)

	view := s.View()
	for _, want := range []string{"AI-Generated Summary", "Medical History", "Past Medicines"} {
		if !strings.Contains(view, want) {
			t.Errorf("consultation view missing %q section", want)
		}
	}

	bare := NewConsultationScreen(catalog.PatientRecord{ID: 9, Name: "X"})
	view = bare.View()
	for _, absent := range []string{"AI-Generated Summary", "Medical History", "Past Medicines"} {
		if strings.Contains(view, absent) {
			t.Errorf("consultation view shows %q for a patient without it", absent)
		}
	}
}
