package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/booking"
)

// ConfirmedAction is the action picked on the booking confirmation screen.
type ConfirmedAction int

const (
	// ConfirmedActionBookAnother restarts the booking flow from scratch.
	ConfirmedActionBookAnother ConfirmedAction = iota
	// ConfirmedActionHome returns to role selection.
	ConfirmedActionHome
)

// ConfirmedScreen shows the booked appointment and offers the next step.
type ConfirmedScreen struct {
	form      *huh.Form
	selection booking.Selection
	action    int

	done      bool
	cancelled bool
}

// NewConfirmedScreen creates the confirmation screen for a completed booking.
func NewConfirmedScreen(sel booking.Selection) *ConfirmedScreen {
	s := &ConfirmedScreen{selection: sel, action: int(ConfirmedActionBookAnother)}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("next").
				Title("What next?").
				Options(
					huh.NewOption("Book another appointment", int(ConfirmedActionBookAnother)),
					huh.NewOption("Go to home", int(ConfirmedActionHome)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model.
func (s *ConfirmedScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *ConfirmedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.action = int(ConfirmedActionHome)
			s.done = true
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model.
func (s *ConfirmedScreen) View() string {
	title := components.SuccessStyle.Render("BOOKING CONFIRMED")
	subtitle := components.SubtitleStyle.Render("Your appointment has been successfully scheduled")

	var hospital, fee, doctor, specialty string
	if s.selection.Hospital != nil {
		hospital = s.selection.Hospital.Name
		fee = fmt.Sprintf("Rs %d", s.selection.Hospital.Fees)
	}
	if s.selection.Doctor != nil {
		doctor = s.selection.Doctor.Name
		specialty = s.selection.Doctor.Specialty
	}

	details := components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.KeyValue("Hospital", hospital),
		components.KeyValue("Doctor", fmt.Sprintf("%s (%s)", doctor, specialty)),
		components.KeyValue("Appointment time", s.selection.Slot),
		components.KeyValue("Consultation fee", fee),
		components.KeyValue("Status", "Confirmed & Booked"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		details,
		"",
		s.form.View(),
		"",
		components.HelpStyle.Render("Enter: Confirm | Esc: Go to home"),
	)
}

// Done returns true once an action was picked.
func (s *ConfirmedScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *ConfirmedScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the picked follow-up action.
func (s *ConfirmedScreen) Action() ConfirmedAction {
	return ConfirmedAction(s.action)
}
