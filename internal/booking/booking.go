// Package booking implements the patient-side appointment workflow: symptom
// entry, hospital results, doctor selection and booking confirmation.
package booking

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// State identifies the current step of the booking workflow.
type State int

const (
	StateSymptomEntry State = iota
	StateResults
	StateDoctorSelection
	StateConfirmed
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateSymptomEntry:
		return "symptom-entry"
	case StateResults:
		return "results"
	case StateDoctorSelection:
		return "doctor-selection"
	case StateConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// Selection is the transient aggregate built up while booking. Hospital and
// Doctor are nil until chosen; Confirmed is only true when Doctor and Slot
// are both set. Callers receive copies and cannot mutate workflow state
// through them.
type Selection struct {
	Symptoms  string
	Hospital  *catalog.Hospital
	Doctor    *catalog.Doctor
	Slot      string
	Confirmed bool
}

// Workflow is the booking state machine. Transitions are synchronous; a
// transition whose guard fails is a silent no-op returning false, mirroring a
// disabled control rather than a validation error.
type Workflow struct {
	store *catalog.Store
	log   zerolog.Logger

	state      State
	sel        Selection
	prediction catalog.Prediction
}

// New creates a booking workflow in its initial empty state.
func New(store *catalog.Store, log zerolog.Logger) *Workflow {
	return &Workflow{
		store: store,
		log:   log.With().Str("workflow", "booking").Logger(),
		state: StateSymptomEntry,
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Selection returns a snapshot of the in-progress selection.
func (w *Workflow) Selection() Selection {
	return w.sel
}

// Prediction returns the triage suggestion produced by the last successful
// symptom submission. The second return is false before the first submission.
func (w *Workflow) Prediction() (catalog.Prediction, bool) {
	if w.state == StateSymptomEntry {
		return catalog.Prediction{}, false
	}
	return w.prediction, true
}

// SubmitSymptoms records the symptom text and moves to the results state.
// Whitespace-only text fails the guard: no transition, no mutation. A
// successful submission always clears any previously chosen hospital, doctor
// and slot so re-entry starts clean.
func (w *Workflow) SubmitSymptoms(text string) bool {
	if strings.TrimSpace(text) == "" {
		w.log.Debug().Msg("rejected empty symptom submission")
		return false
	}

	w.sel = Selection{Symptoms: text}
	w.prediction = w.store.Predict(text)
	w.setState(StateResults)
	return true
}

// Hospitals returns the hospital candidate set in catalog order.
func (w *Workflow) Hospitals() []catalog.Hospital {
	return w.store.Hospitals()
}

// ChooseHospital selects a hospital from the results and moves to doctor
// selection. Unknown hospital ids and out-of-state calls fail the guard.
func (w *Workflow) ChooseHospital(id int) bool {
	if w.state != StateResults {
		w.log.Debug().Int("hospital_id", id).Msg("rejected hospital choice outside results state")
		return false
	}

	h, ok := w.store.Hospital(id)
	if !ok {
		w.log.Debug().Int("hospital_id", id).Msg("rejected unknown hospital")
		return false
	}

	w.sel.Hospital = &h
	w.sel.Doctor = nil
	w.sel.Slot = ""
	w.sel.Confirmed = false
	w.setState(StateDoctorSelection)
	return true
}

// Doctors returns the doctors of the chosen hospital in catalog order. The
// list is empty outside doctor selection or when the hospital has no doctors;
// an empty candidate set is a valid state, not an error.
func (w *Workflow) Doctors() []catalog.Doctor {
	if w.state != StateDoctorSelection || w.sel.Hospital == nil {
		return nil
	}
	return w.store.Doctors(w.sel.Hospital.ID)
}

// BookSlot books the given slot with the given doctor and confirms the
// appointment. Doctor, slot and the confirmed flag are set together; no
// partially-booked selection is ever observable. Guards: the workflow must be
// in doctor selection, the doctor must belong to the chosen hospital and the
// slot must be in the doctor's current availability. If the chosen hospital
// has vanished from the store, the workflow falls back to the results state.
func (w *Workflow) BookSlot(doctorID int, slot string) bool {
	if w.state != StateDoctorSelection || w.sel.Hospital == nil {
		w.log.Debug().Int("doctor_id", doctorID).Msg("rejected booking outside doctor selection")
		return false
	}

	if _, ok := w.store.Hospital(w.sel.Hospital.ID); !ok {
		// Chosen hospital no longer exists: fall back to the nearest
		// valid state rather than booking against a stale reference.
		w.log.Debug().Int("hospital_id", w.sel.Hospital.ID).Msg("chosen hospital vanished, returning to results")
		w.sel.Hospital = nil
		w.sel.Doctor = nil
		w.sel.Slot = ""
		w.sel.Confirmed = false
		w.setState(StateResults)
		return false
	}

	d, ok := w.store.Doctor(doctorID)
	if !ok || d.HospitalID != w.sel.Hospital.ID {
		w.log.Debug().Int("doctor_id", doctorID).Msg("rejected doctor outside candidate set")
		return false
	}

	if !slotAvailable(d, slot) {
		w.log.Debug().Int("doctor_id", doctorID).Str("slot", slot).Msg("rejected unavailable slot")
		return false
	}

	w.sel.Doctor = &d
	w.sel.Slot = slot
	w.sel.Confirmed = true
	w.setState(StateConfirmed)
	return true
}

// BackToSymptoms returns to symptom entry from any later state. The symptom
// text is preserved; hospital, doctor, slot and the confirmed flag are all
// cleared so no stale selection can be shown.
func (w *Workflow) BackToSymptoms() {
	if w.state == StateSymptomEntry {
		return
	}
	w.sel.Hospital = nil
	w.sel.Doctor = nil
	w.sel.Slot = ""
	w.sel.Confirmed = false
	w.setState(StateSymptomEntry)
}

// BookAnother resets the workflow to its initial empty state, identical to a
// fresh start. Used from the confirmation screen.
func (w *Workflow) BookAnother() {
	w.Reset()
}

// Reset discards the entire transient selection, including symptom text.
func (w *Workflow) Reset() {
	w.sel = Selection{}
	w.prediction = catalog.Prediction{}
	w.setState(StateSymptomEntry)
}

func (w *Workflow) setState(next State) {
	if next == w.state {
		return
	}
	w.log.Debug().Stringer("from", w.state).Stringer("to", next).Msg("transition")
	w.state = next
}

func slotAvailable(d catalog.Doctor, slot string) bool {
	for _, s := range d.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}
