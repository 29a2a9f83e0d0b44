package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// ConsultationAction is the action picked at the end of the consultation
// form.
type ConsultationAction int

const (
	// ConsultationActionSave persists the consultation.
	ConsultationActionSave ConsultationAction = iota
	// ConsultationActionCancel discards the draft.
	ConsultationActionCancel
)

// ConsultationScreen shows one patient's details and collects diagnosis,
// prescription and notes. Cancelling at any point discards everything typed.
type ConsultationScreen struct {
	form    *huh.Form
	patient catalog.PatientRecord

	diagnosis    string
	prescription string
	notes        string
	action       int

	done      bool
	cancelled bool
}

// NewConsultationScreen creates the consultation screen for an opened
// patient. The three text fields always start empty.
func NewConsultationScreen(patient catalog.PatientRecord) *ConsultationScreen {
	s := &ConsultationScreen{patient: patient, action: int(ConsultationActionSave)}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("diagnosis").
				Title("Add Diagnosis").
				Placeholder("Enter diagnosis...").
				Value(&s.diagnosis),
			huh.NewText().
				Key("prescription").
				Title("Prescribe Medicine").
				Placeholder("Enter prescription details...").
				Value(&s.prescription),
			huh.NewText().
				Key("notes").
				Title("Consultation Notes").
				Placeholder("Additional notes...").
				Value(&s.notes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("action").
				Title("Finish consultation").
				Options(
					huh.NewOption("Save consultation", int(ConsultationActionSave)),
					huh.NewOption("Cancel", int(ConsultationActionCancel)),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model.
func (s *ConsultationScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *ConsultationScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.action = int(ConsultationActionCancel)
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
func (s *ConsultationScreen) View() string {
	p := s.patient

	title := components.TitleStyle.Render("PATIENT DETAILS")
	header := components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.ValueStyle.Render(fmt.Sprintf("%s, %d years, %s", p.Name, p.Age, p.Gender)),
		components.DangerStyle.Render(p.Disease),
		components.KeyValue("Chief complaint", p.Message),
		components.KeyValue("Appointment", p.AppointmentTime),
	))

	var sections []string
	sections = append(sections, title, header)

	if p.AISummary != "" {
		sections = append(sections, components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			components.AccentStyle.Render("AI-Generated Summary"),
			components.LabelStyle.Render(p.AISummary),
		)))
	}

	if len(p.MedicalHistory) > 0 {
		var lines []string
		lines = append(lines, components.ValueStyle.Render("Medical History"))
		for _, item := range p.MedicalHistory {
			lines = append(lines, components.LabelStyle.Render("- "+item))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if len(p.PastMedicines) > 0 {
		sections = append(sections,
			components.KeyValue("Past Medicines", strings.Join(p.PastMedicines, ", ")))
	}

	sections = append(sections,
		"",
		s.form.View(),
		"",
		components.HelpStyle.Render("Tab: Next field | Enter: Continue | Esc: Cancel consultation"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Done returns true once the form finished or cancel was requested.
func (s *ConsultationScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *ConsultationScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns whether the consultation should be saved or discarded.
func (s *ConsultationScreen) Action() ConsultationAction {
	return ConsultationAction(s.action)
}

// Fields returns the entered diagnosis, prescription and notes.
func (s *ConsultationScreen) Fields() (diagnosis, prescription, notes string) {
	return s.diagnosis, s.prescription, s.notes
}
