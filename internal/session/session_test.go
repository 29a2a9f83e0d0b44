package session

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/internal/booking"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
	"github.com/sanrach0178/Viksit-Health/internal/consult"
	"github.com/sanrach0178/Viksit-Health/internal/reporting"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(catalog.Default(), zerolog.Nop())
}

func TestCurrentView_FollowsRoleAndWorkflowState(t *testing.T) {
	s := newTestSession(t)

	if got := s.CurrentView(); got != ViewRoleSelection {
		t.Errorf("initial view = %v, want RoleSelection", got)
	}

	s.SelectRole(RolePatient)
	if got := s.CurrentView(); got != ViewSymptomEntry {
		t.Errorf("patient view = %v, want SymptomEntry", got)
	}

	s.Booking().SubmitSymptoms("fever")
	if got := s.CurrentView(); got != ViewHospitalResults {
		t.Errorf("view after submission = %v, want HospitalResults", got)
	}

	s.Booking().ChooseHospital(1)
	if got := s.CurrentView(); got != ViewDoctorSelection {
		t.Errorf("view after hospital choice = %v, want DoctorSelection", got)
	}

	s.Booking().BookSlot(1, "10:00 AM")
	if got := s.CurrentView(); got != ViewBookingConfirmed {
		t.Errorf("view after booking = %v, want BookingConfirmed", got)
	}

	s.SelectRole(RoleClinician)
	if got := s.CurrentView(); got != ViewPatientQueue {
		t.Errorf("clinician view = %v, want PatientQueue", got)
	}

	s.Consult().OpenPatient(1)
	if got := s.CurrentView(); got != ViewConsultation {
		t.Errorf("view with open patient = %v, want Consultation", got)
	}

	s.SelectRole(RoleAdministrator)
	if got := s.CurrentView(); got != ViewAdminDashboard {
		t.Errorf("admin view = %v, want AdminDashboard", got)
	}
}

func TestSelectRole_TearsDownPriorWorkflowState(t *testing.T) {
	s := newTestSession(t)

	s.SelectRole(RolePatient)
	s.Booking().SubmitSymptoms("fever and cough")
	s.Booking().ChooseHospital(1)
	s.Booking().BookSlot(1, "10:00 AM")

	s.ReturnToRoleSelection()
	if got := s.Role(); got != RoleUnselected {
		t.Fatalf("role = %v, want Unselected", got)
	}

	// Re-entering the patient role must show a pristine booking flow.
	s.SelectRole(RolePatient)
	if got := s.Booking().State(); got != booking.StateSymptomEntry {
		t.Errorf("booking state = %v, want SymptomEntry", got)
	}
	if sel := s.Booking().Selection(); sel != (booking.Selection{}) {
		t.Errorf("booking selection survived role change: %+v", sel)
	}
}

func TestRoleChange_IsolatesWorkflows(t *testing.T) {
	s := newTestSession(t)

	s.SelectRole(RoleClinician)
	s.Consult().OpenPatient(3)
	s.Consult().SetDiagnosis("half-typed")

	s.SelectRole(RolePatient)
	s.SelectRole(RoleClinician)

	if got := s.Consult().State(); got != consult.StateQueue {
		t.Errorf("consult state = %v, want Queue after role bounce", got)
	}
	if d := s.Consult().Draft(); d.Patient != nil || d.Diagnosis != "" {
		t.Errorf("draft survived role bounce: %+v", d)
	}
}

func TestRoleChange_ResetsAdminView(t *testing.T) {
	s := newTestSession(t)

	s.SelectRole(RoleAdministrator)
	s.Dashboard().SelectView(reporting.ViewInventory)

	s.ReturnToRoleSelection()
	s.SelectRole(RoleAdministrator)

	if got := s.Dashboard().View(); got != reporting.ViewOverview {
		t.Errorf("admin view = %v, want Overview after re-entry", got)
	}
}
