// Package screens contains the individual dashboard screens. Each screen is a
// self-contained bubbletea model exposing Done/Cancelled accessors plus the
// intent it collected; the app orchestrator applies that intent to the
// workflow core and decides what comes next.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/session"
)

const roleExit = -1

// RoleScreen is the entry screen where the user picks a dashboard.
type RoleScreen struct {
	form      *huh.Form
	choice    int
	done      bool
	cancelled bool
}

// NewRoleScreen creates the role selection screen.
func NewRoleScreen() *RoleScreen {
	s := &RoleScreen{choice: int(session.RolePatient)}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("role").
				Title("Who is signing in?").
				Description("Each role gets its own dashboard").
				Options(
					huh.NewOption("Patient - find a hospital and book an appointment", int(session.RolePatient)),
					huh.NewOption("Doctor - review today's patient queue", int(session.RoleClinician)),
					huh.NewOption("Administrator - hospital operations overview", int(session.RoleAdministrator)),
					huh.NewOption("Exit", roleExit),
				).
				Value(&s.choice),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model.
func (s *RoleScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model.
func (s *RoleScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
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
func (s *RoleScreen) View() string {
	if s.cancelled {
		return "Goodbye.\n"
	}

	title := components.TitleStyle.Render("VIKSIT HEALTH")
	subtitle := components.SubtitleStyle.Render("Smart healthcare, one dashboard per role")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		s.form.View(),
		"",
		components.HelpStyle.Render("Enter: Select | Esc: Exit"),
	)
}

// Done returns true once a role was picked.
func (s *RoleScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *RoleScreen) Cancelled() bool {
	return s.cancelled
}

// ExitChosen reports whether the explicit exit entry was picked.
func (s *RoleScreen) ExitChosen() bool {
	return s.choice == roleExit
}

// Role returns the selected role. Only meaningful when Done and not
// ExitChosen.
func (s *RoleScreen) Role() session.Role {
	return session.Role(s.choice)
}
