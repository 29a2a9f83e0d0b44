// Package consult implements the clinician-side workflow: the patient queue,
// the open consultation draft and the saved consultation history.
package consult

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// State identifies the current step of the consultation workflow.
type State int

const (
	StateQueue State = iota
	StateDetail
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateQueue:
		return "queue"
	case StateDetail:
		return "detail"
	}
	return "unknown"
}

// Draft is the transient aggregate for the consultation being written. It
// exists only while a patient is open and is discarded on save or cancel.
type Draft struct {
	Patient      *catalog.PatientRecord
	Diagnosis    string
	Prescription string
	Notes        string
}

// Record is a saved consultation. Records are append-only: saving never
// overwrites earlier consultations for the same patient.
type Record struct {
	ID           string
	PatientID    int
	Diagnosis    string
	Prescription string
	Notes        string
	SavedAt      time.Time
}

// Workflow is the consultation state machine.
type Workflow struct {
	store *catalog.Store
	log   zerolog.Logger
	now   func() time.Time

	state State
	draft Draft
	saved []Record
}

// New creates a consultation workflow showing the patient queue.
func New(store *catalog.Store, log zerolog.Logger) *Workflow {
	return &Workflow{
		store: store,
		log:   log.With().Str("workflow", "consult").Logger(),
		now:   time.Now,
		state: StateQueue,
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Draft returns a snapshot of the open consultation draft.
func (w *Workflow) Draft() Draft {
	return w.draft
}

// Queue returns the patient queue in catalog order.
func (w *Workflow) Queue() []catalog.PatientRecord {
	return w.store.Patients()
}

// OpenPatient opens the given patient for consultation. The draft's text
// fields always start empty, whatever was typed for a previously opened
// patient; no half-written notes leak between patients. Unknown patient ids
// fail the guard.
func (w *Workflow) OpenPatient(id int) bool {
	p, ok := w.store.Patient(id)
	if !ok {
		w.log.Debug().Int("patient_id", id).Msg("rejected unknown patient")
		return false
	}

	w.draft = Draft{Patient: &p}
	w.setState(StateDetail)
	return true
}

// SetDiagnosis updates the draft diagnosis. No-op outside an open
// consultation.
func (w *Workflow) SetDiagnosis(text string) {
	if w.state != StateDetail {
		return
	}
	w.draft.Diagnosis = text
}

// SetPrescription updates the draft prescription. No-op outside an open
// consultation.
func (w *Workflow) SetPrescription(text string) {
	if w.state != StateDetail {
		return
	}
	w.draft.Prescription = text
}

// SetNotes updates the draft notes. No-op outside an open consultation.
func (w *Workflow) SetNotes(text string) {
	if w.state != StateDetail {
		return
	}
	w.draft.Notes = text
}

// Save persists the draft as a consultation record, marks the patient
// completed and returns to the queue. Empty fields are saveable; the workflow
// imposes no field-level validation. Fails the guard when no patient is open,
// or when the open patient has vanished from the store, in which case the
// draft is discarded and the workflow falls back to the queue.
func (w *Workflow) Save() (Record, bool) {
	if w.state != StateDetail || w.draft.Patient == nil {
		w.log.Debug().Msg("rejected save with no open consultation")
		return Record{}, false
	}

	if !w.store.SetPatientStatus(w.draft.Patient.ID, catalog.StatusCompleted) {
		// Open patient no longer exists in the store: discard the draft
		// and return to the queue rather than recording against a
		// missing id.
		w.log.Debug().Int("patient_id", w.draft.Patient.ID).Msg("open patient vanished, discarding draft")
		w.draft = Draft{}
		w.setState(StateQueue)
		return Record{}, false
	}

	rec := Record{
		ID:           uuid.NewString(),
		PatientID:    w.draft.Patient.ID,
		Diagnosis:    w.draft.Diagnosis,
		Prescription: w.draft.Prescription,
		Notes:        w.draft.Notes,
		SavedAt:      w.now(),
	}
	w.saved = append(w.saved, rec)
	w.log.Info().Str("record_id", rec.ID).Int("patient_id", rec.PatientID).Msg("consultation saved")

	w.draft = Draft{}
	w.setState(StateQueue)
	return rec, true
}

// Cancel discards the draft unconditionally and returns to the queue.
func (w *Workflow) Cancel() {
	if w.state != StateDetail {
		return
	}
	w.draft = Draft{}
	w.setState(StateQueue)
}

// Records returns every consultation saved this session, in save order.
func (w *Workflow) Records() []Record {
	out := make([]Record, len(w.saved))
	copy(out, w.saved)
	return out
}

// RecordsFor returns the saved consultations for one patient, in save order.
func (w *Workflow) RecordsFor(patientID int) []Record {
	var out []Record
	for _, r := range w.saved {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out
}

// Reset discards the draft and the session history and returns to the queue.
// Invoked on role teardown.
func (w *Workflow) Reset() {
	w.draft = Draft{}
	w.saved = nil
	w.setState(StateQueue)
}

func (w *Workflow) setState(next State) {
	if next == w.state {
		return
	}
	w.log.Debug().Stringer("from", w.state).Stringer("to", next).Msg("transition")
	w.state = next
}
