package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// slotChoice pairs one doctor with one of their available slots. The doctor
// list is flattened into these so a single pick books atomically.
type slotChoice struct {
	DoctorID int
	Slot     string
}

// DoctorsScreen lists the chosen hospital's doctors and their slots. An
// empty candidate set is a valid screen that only offers the way back.
type DoctorsScreen struct {
	form     *huh.Form
	hospital catalog.Hospital
	doctors  []catalog.Doctor
	choices  []slotChoice
	choice   int

	done      bool
	back      bool
	cancelled bool
}

// NewDoctorsScreen creates the doctor selection screen.
func NewDoctorsScreen(hospital catalog.Hospital, doctors []catalog.Doctor) *DoctorsScreen {
	s := &DoctorsScreen{hospital: hospital, doctors: doctors}

	var options []huh.Option[int]
	for _, d := range doctors {
		for _, slot := range d.AvailableSlots {
			label := fmt.Sprintf("%s (%s, %.1f, %d yrs) - %s", d.Name, d.Specialty, d.Rating, d.Experience, slot)
			options = append(options, huh.NewOption(label, len(s.choices)))
			s.choices = append(s.choices, slotChoice{DoctorID: d.ID, Slot: slot})
		}
	}

	if len(options) > 0 {
		s.form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[int]().
					Key("slot").
					Title("Select a doctor and time slot").
					Options(options...).
					Value(&s.choice),
			),
		).WithShowHelp(false)
	}

	return s
}

// Init implements tea.Model.
func (s *DoctorsScreen) Init() tea.Cmd {
	if s.form == nil {
		return nil
	}
	return s.form.Init()
}

// Update implements tea.Model.
func (s *DoctorsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			s.done = true
			return s, nil
		}
		// With no doctors available the only actions are back and quit.
		if s.form == nil {
			if key.String() == "enter" {
				s.back = true
				s.done = true
			}
			return s, nil
		}
	}

	if s.form == nil {
		return s, nil
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
func (s *DoctorsScreen) View() string {
	title := components.TitleStyle.Render("SELECT DOCTOR")
	subtitle := components.SubtitleStyle.Render(s.hospital.Name)

	if s.form == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			subtitle,
			components.WarnStyle.Render("No doctors are currently available at this hospital."),
			"",
			components.HelpStyle.Render("Enter/Esc: Back to symptoms"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		s.form.View(),
		"",
		components.HelpStyle.Render("Enter: Book appointment | Esc: Back to symptoms"),
	)
}

// Done returns true once a slot was picked or back was requested.
func (s *DoctorsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *DoctorsScreen) Cancelled() bool {
	return s.cancelled
}

// BackRequested reports whether the user asked to return to symptom entry.
func (s *DoctorsScreen) BackRequested() bool {
	return s.back
}

// Choice returns the picked doctor id and slot. Only meaningful when Done
// and not BackRequested.
func (s *DoctorsScreen) Choice() (int, string) {
	if s.choice < 0 || s.choice >= len(s.choices) {
		return 0, ""
	}
	c := s.choices[s.choice]
	return c.DoctorID, c.Slot
}
