package booking

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

func newTestWorkflow(t *testing.T) *Workflow {
	t.Helper()
	return New(catalog.Default(), zerolog.Nop())
}

func TestSubmitSymptoms_EmptyTextIsRejected(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n  "} {
		w := newTestWorkflow(t)
		if w.SubmitSymptoms(text) {
			t.Errorf("SubmitSymptoms(%q) succeeded, want guard failure", text)
		}
		if w.State() != StateSymptomEntry {
			t.Errorf("SubmitSymptoms(%q) left state %v, want SymptomEntry", text, w.State())
		}
		if w.Selection() != (Selection{}) {
			t.Errorf("SubmitSymptoms(%q) mutated selection: %+v", text, w.Selection())
		}
	}
}

func TestSubmitSymptoms_MovesToResults(t *testing.T) {
	w := newTestWorkflow(t)
	if !w.SubmitSymptoms("fever and cough") {
		t.Fatal("SubmitSymptoms failed")
	}
	if w.State() != StateResults {
		t.Fatalf("state = %v, want Results", w.State())
	}
	if got := w.Selection().Symptoms; got != "fever and cough" {
		t.Errorf("symptoms = %q, want %q", got, "fever and cough")
	}

	pred, ok := w.Prediction()
	if !ok {
		t.Fatal("Prediction() not available after submission")
	}
	if pred.Department == "" || pred.ConfidencePercent == 0 {
		t.Errorf("prediction incomplete: %+v", pred)
	}
}

func TestSubmitSymptoms_ClearsPriorSelection(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever")
	w.ChooseHospital(1)
	w.BookSlot(1, "10:00 AM")

	// Booking again must start from a clean selection.
	w.BackToSymptoms()
	if !w.SubmitSymptoms("still feverish") {
		t.Fatal("re-submission failed")
	}
	sel := w.Selection()
	if sel.Hospital != nil || sel.Doctor != nil || sel.Slot != "" || sel.Confirmed {
		t.Errorf("re-submission kept stale selection: %+v", sel)
	}
}

func TestChooseHospital_SetsCandidateDoctors(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever and cough")

	if !w.ChooseHospital(1) {
		t.Fatal("ChooseHospital(1) failed")
	}
	if w.State() != StateDoctorSelection {
		t.Fatalf("state = %v, want DoctorSelection", w.State())
	}

	for _, d := range w.Doctors() {
		if d.HospitalID != 1 {
			t.Errorf("candidate doctor %q belongs to hospital %d, want 1", d.Name, d.HospitalID)
		}
	}
}

func TestChooseHospital_EmptyDoctorListIsValid(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever")

	// Hospitals 2 and 3 have no doctors in the default catalog.
	if !w.ChooseHospital(2) {
		t.Fatal("ChooseHospital(2) failed")
	}
	if w.State() != StateDoctorSelection {
		t.Fatalf("state = %v, want DoctorSelection", w.State())
	}
	if got := w.Doctors(); len(got) != 0 {
		t.Errorf("Doctors() = %d entries, want empty", len(got))
	}
}

func TestChooseHospital_Guards(t *testing.T) {
	w := newTestWorkflow(t)
	if w.ChooseHospital(1) {
		t.Error("ChooseHospital succeeded before symptom submission")
	}

	w.SubmitSymptoms("fever")
	if w.ChooseHospital(99) {
		t.Error("ChooseHospital succeeded for unknown hospital")
	}
	if w.State() != StateResults {
		t.Errorf("state = %v after rejected choice, want Results", w.State())
	}
}

func TestBookSlot_AtomicConfirmation(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever and cough")
	w.ChooseHospital(1)

	if !w.BookSlot(1, "10:00 AM") {
		t.Fatal("BookSlot failed")
	}
	sel := w.Selection()
	if !sel.Confirmed {
		t.Error("selection not confirmed after booking")
	}
	if sel.Doctor == nil || sel.Doctor.ID != 1 {
		t.Errorf("doctor = %+v, want id 1", sel.Doctor)
	}
	if sel.Slot != "10:00 AM" {
		t.Errorf("slot = %q, want 10:00 AM", sel.Slot)
	}
	if sel.Hospital == nil || sel.Hospital.Fees != 500 {
		t.Errorf("hospital = %+v, want fees 500 from hospital 1", sel.Hospital)
	}
	if w.State() != StateConfirmed {
		t.Errorf("state = %v, want Confirmed", w.State())
	}
}

func TestBookSlot_RejectsSlotOutsideAvailability(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever")
	w.ChooseHospital(1)

	if w.BookSlot(1, "8:00 AM") {
		t.Error("BookSlot succeeded for unavailable slot")
	}
	sel := w.Selection()
	if sel.Doctor != nil || sel.Slot != "" || sel.Confirmed {
		t.Errorf("rejected booking left partial selection: %+v", sel)
	}
	if w.State() != StateDoctorSelection {
		t.Errorf("state = %v, want DoctorSelection", w.State())
	}
}

func TestBookSlot_RejectsDoctorFromOtherHospital(t *testing.T) {
	hospitals := []catalog.Hospital{
		{ID: 1, Name: "One", Rating: 4.0},
		{ID: 2, Name: "Two", Rating: 4.0},
	}
	doctors := []catalog.Doctor{
		{ID: 1, Name: "Dr. A", Rating: 4.0, AvailableSlots: []string{"9:00 AM"}, HospitalID: 1},
		{ID: 2, Name: "Dr. B", Rating: 4.0, AvailableSlots: []string{"9:00 AM"}, HospitalID: 2},
	}
	store, err := catalog.NewStore(hospitals, doctors, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	w := New(store, zerolog.Nop())
	w.SubmitSymptoms("fever")
	w.ChooseHospital(1)

	if w.BookSlot(2, "9:00 AM") {
		t.Error("BookSlot succeeded for doctor outside chosen hospital")
	}
	if sel := w.Selection(); sel.Confirmed {
		t.Errorf("cross-hospital booking confirmed: %+v", sel)
	}
}

func TestBackToSymptoms_ClearsSelectionKeepsText(t *testing.T) {
	states := []func(w *Workflow){
		func(w *Workflow) { w.SubmitSymptoms("fever") },
		func(w *Workflow) { w.SubmitSymptoms("fever"); w.ChooseHospital(1) },
		func(w *Workflow) { w.SubmitSymptoms("fever"); w.ChooseHospital(1); w.BookSlot(1, "10:00 AM") },
	}

	for i, setup := range states {
		w := newTestWorkflow(t)
		setup(w)
		w.BackToSymptoms()

		if w.State() != StateSymptomEntry {
			t.Errorf("case %d: state = %v, want SymptomEntry", i, w.State())
		}
		sel := w.Selection()
		if sel.Hospital != nil || sel.Doctor != nil || sel.Slot != "" || sel.Confirmed {
			t.Errorf("case %d: selection not cleared: %+v", i, sel)
		}
		if sel.Symptoms != "fever" {
			t.Errorf("case %d: symptom text = %q, want preserved", i, sel.Symptoms)
		}
	}
}

func TestBookAnother_FullReset(t *testing.T) {
	w := newTestWorkflow(t)
	w.SubmitSymptoms("fever and cough")
	w.ChooseHospital(1)
	w.BookSlot(2, "9:30 AM")

	w.BookAnother()
	if w.State() != StateSymptomEntry {
		t.Errorf("state = %v, want SymptomEntry", w.State())
	}
	if w.Selection() != (Selection{}) {
		t.Errorf("selection not empty after reset: %+v", w.Selection())
	}
	if _, ok := w.Prediction(); ok {
		t.Error("prediction still available after reset")
	}
}

func TestBookSlot_VanishedHospitalFallsBackToResults(t *testing.T) {
	// Two stores sharing ids: the workflow holds a hospital ref that the
	// second store does not know. Simulates a live-data removal.
	full, err := catalog.NewStore(
		[]catalog.Hospital{{ID: 1, Name: "One", Rating: 4.0}},
		[]catalog.Doctor{{ID: 1, Name: "Dr. A", Rating: 4.0, AvailableSlots: []string{"9:00 AM"}, HospitalID: 1}},
		nil, nil, nil, nil,
	)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	w := New(full, zerolog.Nop())
	w.SubmitSymptoms("fever")
	w.ChooseHospital(1)

	empty, err := catalog.NewStore(nil, nil, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	w.store = empty

	if w.BookSlot(1, "9:00 AM") {
		t.Error("BookSlot succeeded against vanished hospital")
	}
	if w.State() != StateResults {
		t.Errorf("state = %v, want forced fallback to Results", w.State())
	}
	if sel := w.Selection(); sel.Hospital != nil {
		t.Errorf("stale hospital ref survived fallback: %+v", sel.Hospital)
	}
}
