package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// QueueScreen is the clinician's patient queue.
type QueueScreen struct {
	table    table.Model
	patients []catalog.PatientRecord

	done      bool
	back      bool
	cancelled bool
}

// NewQueueScreen creates the queue screen for today's patients.
func NewQueueScreen(patients []catalog.PatientRecord) *QueueScreen {
	columns := []table.Column{
		{Title: "Patient", Width: 16},
		{Title: "Age", Width: 5},
		{Title: "Gender", Width: 8},
		{Title: "Condition", Width: 18},
		{Title: "Time", Width: 9},
		{Title: "Status", Width: 12},
	}

	rows := make([]table.Row, len(patients))
	for i, p := range patients {
		rows[i] = table.Row{
			p.Name,
			fmt.Sprintf("%d", p.Age),
			p.Gender,
			p.Disease,
			p.AppointmentTime,
			string(p.Status),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("42"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("28"))
	t.SetStyles(styles)

	return &QueueScreen{table: t, patients: patients}
}

// Init implements tea.Model.
func (s *QueueScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *QueueScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			s.done = true
			return s, nil
		case "enter":
			if len(s.patients) > 0 {
				s.done = true
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View implements tea.Model.
func (s *QueueScreen) View() string {
	title := components.TitleStyle.Render("TODAY'S PATIENTS")

	complaint := ""
	if p, ok := s.Selected(); ok {
		complaint = components.LabelStyle.Render(fmt.Sprintf("%q", p.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.table.View(),
		complaint,
		"",
		components.HelpStyle.Render("Enter: Open consultation | Up/Down: Navigate | Esc: Back to role selection"),
	)
}

// Done returns true once a patient was opened or back was requested.
func (s *QueueScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *QueueScreen) Cancelled() bool {
	return s.cancelled
}

// BackRequested reports whether the user asked to leave the clinician flow.
func (s *QueueScreen) BackRequested() bool {
	return s.back
}

// Selected returns the highlighted patient.
func (s *QueueScreen) Selected() (catalog.PatientRecord, bool) {
	idx := s.table.Cursor()
	if idx < 0 || idx >= len(s.patients) {
		return catalog.PatientRecord{}, false
	}
	return s.patients[idx], true
}
