package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
)

// SymptomScreen collects the patient's symptom description. Submission of
// blank text is left to the workflow guard; the screen simply re-presents
// itself, mirroring a disabled button.
type SymptomScreen struct {
	form      *huh.Form
	symptoms  string
	done      bool
	back      bool
	cancelled bool
}

// NewSymptomScreen creates the symptom entry screen. Any previously typed
// text is carried back in so back-navigation does not lose it.
func NewSymptomScreen(symptoms string) *SymptomScreen {
	s := &SymptomScreen{symptoms: symptoms}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("symptoms").
				Title("How are you feeling today?").
				Description("Describe your symptoms (e.g. fever, headache, cough). Include duration and severity for a better triage suggestion.").
				Placeholder("severe headache for 2 days...").
				Value(&s.symptoms),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model.
func (s *SymptomScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *SymptomScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *SymptomScreen) View() string {
	title := components.TitleStyle.Render("FIND THE RIGHT HOSPITAL")

	tips := components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.ValueStyle.Render("Helpful tips"),
		components.LabelStyle.Render("- Be specific about your symptoms for a better suggestion"),
		components.LabelStyle.Render("- Include duration and severity"),
		components.LabelStyle.Render("- The suggested department and waiting time appear after submission"),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.form.View(),
		"",
		tips,
		"",
		components.HelpStyle.Render("Enter: Find hospitals | Esc: Back to role selection"),
	)
}

// Done returns true once the form was submitted or back was requested.
func (s *SymptomScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *SymptomScreen) Cancelled() bool {
	return s.cancelled
}

// BackRequested reports whether the user asked to leave the patient flow.
func (s *SymptomScreen) BackRequested() bool {
	return s.back
}

// Symptoms returns the entered symptom text.
func (s *SymptomScreen) Symptoms() string {
	return s.symptoms
}
