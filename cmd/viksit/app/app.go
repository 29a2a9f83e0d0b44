// Package app provides the terminal interface over the workflow core. It
// renders one screen per session view and forwards the collected intents to
// the workflows; all sequencing rules live in the core, not here.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/screens"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
	"github.com/sanrach0178/Viksit-Health/internal/session"
)

// Phase represents the current screen of the application.
type Phase int

const (
	PhaseRoleSelection Phase = iota
	PhaseSymptomEntry
	PhaseHospitalResults
	PhaseDoctorSelection
	PhaseBookingConfirmed
	PhasePatientQueue
	PhaseConsultation
	PhaseAdminDashboard
)

// App is the top-level orchestrator. It owns the session and the screen
// instances and routes messages to the screen matching the current phase.
type App struct {
	session *session.Session

	phase Phase

	roleScreen         *screens.RoleScreen
	symptomScreen      *screens.SymptomScreen
	hospitalsScreen    *screens.HospitalsScreen
	doctorsScreen      *screens.DoctorsScreen
	confirmedScreen    *screens.ConfirmedScreen
	queueScreen        *screens.QueueScreen
	consultationScreen *screens.ConsultationScreen
	adminScreen        *screens.AdminScreen

	width  int
	height int

	cancelled bool
}

// NewApp creates the application at the role selection screen.
func NewApp(sess *session.Session) *App {
	a := &App{
		session: sess,
		phase:   PhaseRoleSelection,
	}
	a.roleScreen = screens.NewRoleScreen()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.roleScreen.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	switch a.phase {
	case PhaseRoleSelection:
		return a.updateRoleSelection(msg)
	case PhaseSymptomEntry:
		return a.updateSymptomEntry(msg)
	case PhaseHospitalResults:
		return a.updateHospitalResults(msg)
	case PhaseDoctorSelection:
		return a.updateDoctorSelection(msg)
	case PhaseBookingConfirmed:
		return a.updateBookingConfirmed(msg)
	case PhasePatientQueue:
		return a.updatePatientQueue(msg)
	case PhaseConsultation:
		return a.updateConsultation(msg)
	case PhaseAdminDashboard:
		return a.updateAdminDashboard(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.phase {
	case PhaseRoleSelection:
		return a.roleScreen.View()
	case PhaseSymptomEntry:
		return a.symptomScreen.View()
	case PhaseHospitalResults:
		return a.hospitalsScreen.View()
	case PhaseDoctorSelection:
		return a.doctorsScreen.View()
	case PhaseBookingConfirmed:
		return a.confirmedScreen.View()
	case PhasePatientQueue:
		return a.queueScreen.View()
	case PhaseConsultation:
		return a.consultationScreen.View()
	case PhaseAdminDashboard:
		return a.adminScreen.View()
	}

	return ""
}

func (a *App) updateRoleSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.roleScreen.Update(msg)
	if rs, ok := model.(*screens.RoleScreen); ok {
		a.roleScreen = rs
	}

	if a.roleScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.roleScreen.Done() {
		if a.roleScreen.ExitChosen() {
			a.cancelled = true
			return a, tea.Quit
		}
		a.session.SelectRole(a.roleScreen.Role())
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateSymptomEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.symptomScreen.Update(msg)
	if ss, ok := model.(*screens.SymptomScreen); ok {
		a.symptomScreen = ss
	}

	if a.symptomScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.symptomScreen.Done() {
		if a.symptomScreen.BackRequested() {
			a.session.ReturnToRoleSelection()
			return a.syncPhase()
		}
		// A rejected submission (blank text) re-presents the same
		// screen: the guard is a disabled control, not an error.
		a.session.Booking().SubmitSymptoms(a.symptomScreen.Symptoms())
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateHospitalResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.hospitalsScreen.Update(msg)
	if hs, ok := model.(*screens.HospitalsScreen); ok {
		a.hospitalsScreen = hs
	}

	if a.hospitalsScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.hospitalsScreen.Done() {
		if a.hospitalsScreen.BackRequested() {
			a.session.Booking().BackToSymptoms()
			return a.syncPhase()
		}
		if h, ok := a.hospitalsScreen.Selected(); ok {
			a.session.Booking().ChooseHospital(h.ID)
		}
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateDoctorSelection(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.doctorsScreen.Update(msg)
	if ds, ok := model.(*screens.DoctorsScreen); ok {
		a.doctorsScreen = ds
	}

	if a.doctorsScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.doctorsScreen.Done() {
		if a.doctorsScreen.BackRequested() {
			a.session.Booking().BackToSymptoms()
			return a.syncPhase()
		}
		doctorID, slot := a.doctorsScreen.Choice()
		a.session.Booking().BookSlot(doctorID, slot)
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateBookingConfirmed(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.confirmedScreen.Update(msg)
	if cs, ok := model.(*screens.ConfirmedScreen); ok {
		a.confirmedScreen = cs
	}

	if a.confirmedScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.confirmedScreen.Done() {
		switch a.confirmedScreen.Action() {
		case screens.ConfirmedActionBookAnother:
			a.session.Booking().BookAnother()
		case screens.ConfirmedActionHome:
			a.session.ReturnToRoleSelection()
		}
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updatePatientQueue(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.queueScreen.Update(msg)
	if qs, ok := model.(*screens.QueueScreen); ok {
		a.queueScreen = qs
	}

	if a.queueScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.queueScreen.Done() {
		if a.queueScreen.BackRequested() {
			a.session.ReturnToRoleSelection()
			return a.syncPhase()
		}
		if p, ok := a.queueScreen.Selected(); ok {
			a.session.Consult().OpenPatient(p.ID)
		}
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateConsultation(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.consultationScreen.Update(msg)
	if cs, ok := model.(*screens.ConsultationScreen); ok {
		a.consultationScreen = cs
	}

	if a.consultationScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.consultationScreen.Done() {
		consult := a.session.Consult()
		switch a.consultationScreen.Action() {
		case screens.ConsultationActionSave:
			diagnosis, prescription, notes := a.consultationScreen.Fields()
			consult.SetDiagnosis(diagnosis)
			consult.SetPrescription(prescription)
			consult.SetNotes(notes)
			consult.Save()
		case screens.ConsultationActionCancel:
			consult.Cancel()
		}
		return a.syncPhase()
	}

	return a, cmd
}

func (a *App) updateAdminDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := a.adminScreen.Update(msg)
	if as, ok := model.(*screens.AdminScreen); ok {
		a.adminScreen = as
	}

	if a.adminScreen.Cancelled() {
		a.cancelled = true
		return a, tea.Quit
	}

	if a.adminScreen.Done() {
		a.session.ReturnToRoleSelection()
		return a.syncPhase()
	}

	return a, cmd
}

// syncPhase rebuilds the screen for the view the session now reports. The
// session is authoritative: the app never decides what comes next, it only
// materializes the screen for the state the workflows reached.
func (a *App) syncPhase() (tea.Model, tea.Cmd) {
	switch a.session.CurrentView() {
	case session.ViewSymptomEntry:
		a.phase = PhaseSymptomEntry
		a.symptomScreen = screens.NewSymptomScreen(a.session.Booking().Selection().Symptoms)
		return a, a.symptomScreen.Init()

	case session.ViewHospitalResults:
		a.phase = PhaseHospitalResults
		prediction, _ := a.session.Booking().Prediction()
		a.hospitalsScreen = screens.NewHospitalsScreen(a.session.Booking().Hospitals(), prediction)
		return a, a.hospitalsScreen.Init()

	case session.ViewDoctorSelection:
		a.phase = PhaseDoctorSelection
		sel := a.session.Booking().Selection()
		hospital := catalog.Hospital{}
		if sel.Hospital != nil {
			hospital = *sel.Hospital
		}
		a.doctorsScreen = screens.NewDoctorsScreen(hospital, a.session.Booking().Doctors())
		return a, a.doctorsScreen.Init()

	case session.ViewBookingConfirmed:
		a.phase = PhaseBookingConfirmed
		a.confirmedScreen = screens.NewConfirmedScreen(a.session.Booking().Selection())
		return a, a.confirmedScreen.Init()

	case session.ViewPatientQueue:
		a.phase = PhasePatientQueue
		a.queueScreen = screens.NewQueueScreen(a.session.Consult().Queue())
		return a, a.queueScreen.Init()

	case session.ViewConsultation:
		a.phase = PhaseConsultation
		draft := a.session.Consult().Draft()
		patient := catalog.PatientRecord{}
		if draft.Patient != nil {
			patient = *draft.Patient
		}
		a.consultationScreen = screens.NewConsultationScreen(patient)
		return a, a.consultationScreen.Init()

	case session.ViewAdminDashboard:
		a.phase = PhaseAdminDashboard
		a.adminScreen = screens.NewAdminScreen(a.session.Store(), a.session.Dashboard())
		return a, a.adminScreen.Init()
	}

	a.phase = PhaseRoleSelection
	a.roleScreen = screens.NewRoleScreen()
	return a, a.roleScreen.Init()
}

// Phase returns the current screen phase.
func (a *App) Phase() Phase {
	return a.phase
}

// Cancelled returns true if the user quit the application.
func (a *App) Cancelled() bool {
	return a.cancelled
}

// Run starts the interactive application over the given store.
func Run(store *catalog.Store, log zerolog.Logger) error {
	sess := session.New(store, log)
	application := NewApp(sess)

	p := tea.NewProgram(application, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}

	return nil
}
