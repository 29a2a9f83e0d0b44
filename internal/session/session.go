// Package session owns the active role and the per-role workflow aggregates,
// and maps the pair onto the view to render.
package session

import (
	"github.com/rs/zerolog"

	"github.com/sanrach0178/Viksit-Health/internal/booking"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
	"github.com/sanrach0178/Viksit-Health/internal/consult"
	"github.com/sanrach0178/Viksit-Health/internal/reporting"
)

// Role is the active user role. Exactly one role is active at a time.
type Role int

const (
	RoleUnselected Role = iota
	RolePatient
	RoleClinician
	RoleAdministrator
)

// String returns the role name for logging.
func (r Role) String() string {
	switch r {
	case RoleUnselected:
		return "unselected"
	case RolePatient:
		return "patient"
	case RoleClinician:
		return "clinician"
	case RoleAdministrator:
		return "administrator"
	}
	return "unknown"
}

// View identifies the screen to render for the current session state.
type View int

const (
	ViewRoleSelection View = iota
	ViewSymptomEntry
	ViewHospitalResults
	ViewDoctorSelection
	ViewBookingConfirmed
	ViewPatientQueue
	ViewConsultation
	ViewAdminDashboard
)

// Session is the single owner of all transient UI state: the active role,
// the booking and consultation workflows and the administrator view
// selection. Changing role tears everything down so a later role never sees
// an earlier role's in-progress selections.
type Session struct {
	store *catalog.Store
	log   zerolog.Logger

	role      Role
	booking   *booking.Workflow
	consult   *consult.Workflow
	dashboard *reporting.Dashboard
}

// New creates a session at the role selection screen.
func New(store *catalog.Store, log zerolog.Logger) *Session {
	return &Session{
		store:     store,
		log:       log.With().Str("component", "session").Logger(),
		role:      RoleUnselected,
		booking:   booking.New(store, log),
		consult:   consult.New(store, log),
		dashboard: reporting.NewDashboard(store),
	}
}

// Role returns the active role.
func (s *Session) Role() Role {
	return s.role
}

// Store returns the reference data store.
func (s *Session) Store() *catalog.Store {
	return s.store
}

// Booking returns the patient booking workflow.
func (s *Session) Booking() *booking.Workflow {
	return s.booking
}

// Consult returns the clinician consultation workflow.
func (s *Session) Consult() *consult.Workflow {
	return s.consult
}

// Dashboard returns the administrator dashboard state.
func (s *Session) Dashboard() *reporting.Dashboard {
	return s.dashboard
}

// SelectRole activates a role. All workflow aggregates are reset first, so
// every role entry starts from a clean slate regardless of prior history.
func (s *Session) SelectRole(r Role) {
	s.reset()
	s.role = r
	s.log.Info().Stringer("role", r).Msg("role selected")
}

// ReturnToRoleSelection deactivates the current role and tears down all
// workflow state.
func (s *Session) ReturnToRoleSelection() {
	s.reset()
	s.role = RoleUnselected
	s.log.Info().Msg("returned to role selection")
}

func (s *Session) reset() {
	s.booking.Reset()
	s.consult.Reset()
	s.dashboard.Reset()
}

// CurrentView maps the active role and workflow state to the view to render.
// It is a pure derivation and holds no state of its own.
func (s *Session) CurrentView() View {
	switch s.role {
	case RolePatient:
		switch s.booking.State() {
		case booking.StateResults:
			return ViewHospitalResults
		case booking.StateDoctorSelection:
			return ViewDoctorSelection
		case booking.StateConfirmed:
			return ViewBookingConfirmed
		default:
			return ViewSymptomEntry
		}
	case RoleClinician:
		if s.consult.State() == consult.StateDetail {
			return ViewConsultation
		}
		return ViewPatientQueue
	case RoleAdministrator:
		return ViewAdminDashboard
	}
	return ViewRoleSelection
}
