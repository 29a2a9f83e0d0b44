package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
)

// HospitalsScreen shows the triage suggestion and the hospital results list.
type HospitalsScreen struct {
	table      table.Model
	hospitals  []catalog.Hospital
	prediction catalog.Prediction

	done      bool
	back      bool
	cancelled bool
}

// NewHospitalsScreen creates the results screen for the given candidate set.
func NewHospitalsScreen(hospitals []catalog.Hospital, prediction catalog.Prediction) *HospitalsScreen {
	columns := []table.Column{
		{Title: "Hospital", Width: 24},
		{Title: "Distance", Width: 9},
		{Title: "Wait", Width: 7},
		{Title: "Fee", Width: 6},
		{Title: "Beds free", Width: 10},
		{Title: "Rating", Width: 7},
	}

	rows := make([]table.Row, len(hospitals))
	for i, h := range hospitals {
		rows[i] = table.Row{
			h.Name,
			h.Distance,
			h.WaitingTime,
			fmt.Sprintf("Rs %d", h.Fees),
			fmt.Sprintf("%d", h.Beds.Free),
			fmt.Sprintf("%.1f", h.Rating),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("39"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return &HospitalsScreen{
		table:      t,
		hospitals:  hospitals,
		prediction: prediction,
	}
}

// Init implements tea.Model.
func (s *HospitalsScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *HospitalsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if len(s.hospitals) > 0 {
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
func (s *HospitalsScreen) View() string {
	title := components.TitleStyle.Render("NEARBY HOSPITALS")

	prediction := components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.AccentStyle.Render("Triage suggestion"),
		components.KeyValue("Suggested department", s.prediction.Department),
		components.KeyValue("Estimated waiting time", s.prediction.WaitingTime),
		components.KeyValue("Confidence", fmt.Sprintf("%d%%", s.prediction.ConfidencePercent)),
	))

	bedsLine := ""
	if h, ok := s.Selected(); ok {
		bedsLine = components.LabelStyle.Render(fmt.Sprintf(
			"%s - beds: %d free, %d occupied, %d cleaning",
			h.Name, h.Beds.Free, h.Beds.Occupied, h.Beds.Cleaning,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		prediction,
		"",
		s.table.View(),
		bedsLine,
		"",
		components.HelpStyle.Render("Enter: View doctors | Up/Down: Navigate | Esc: Back to symptoms"),
	)
}

// Done returns true once a hospital was chosen or back was requested.
func (s *HospitalsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *HospitalsScreen) Cancelled() bool {
	return s.cancelled
}

// BackRequested reports whether the user asked to return to symptom entry.
func (s *HospitalsScreen) BackRequested() bool {
	return s.back
}

// Selected returns the highlighted hospital.
func (s *HospitalsScreen) Selected() (catalog.Hospital, bool) {
	idx := s.table.Cursor()
	if idx < 0 || idx >= len(s.hospitals) {
		return catalog.Hospital{}, false
	}
	return s.hospitals[idx], true
}
