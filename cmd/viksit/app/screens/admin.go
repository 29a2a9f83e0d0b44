package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanrach0178/Viksit-Health/cmd/viksit/app/components"
	"github.com/sanrach0178/Viksit-Health/internal/catalog"
	"github.com/sanrach0178/Viksit-Health/internal/reporting"
)

var adminPanels = []reporting.View{
	reporting.ViewOverview,
	reporting.ViewDiseases,
	reporting.ViewInventory,
	reporting.ViewReports,
	reporting.ViewDoctors,
}

// AdminScreen is the administrator dashboard. The panel selector is the only
// workflow state; every figure is recomputed from the store on render.
type AdminScreen struct {
	store     *catalog.Store
	dashboard *reporting.Dashboard
	inventory table.Model
	doctors   table.Model

	done      bool
	cancelled bool
}

// NewAdminScreen creates the administrator dashboard screen.
func NewAdminScreen(store *catalog.Store, dashboard *reporting.Dashboard) *AdminScreen {
	columns := []table.Column{
		{Title: "Medicine", Width: 20},
		{Title: "Stock", Width: 7},
		{Title: "Price", Width: 8},
		{Title: "Expiry", Width: 10},
		{Title: "Status", Width: 9},
	}

	medicines := store.Medicines()
	rows := make([]table.Row, len(medicines))
	for i, m := range medicines {
		rows[i] = table.Row{
			m.Name,
			fmt.Sprintf("%d", m.Stock),
			fmt.Sprintf("Rs %.1f", m.Price),
			m.Expiry,
			string(reporting.StatusFor(m)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("99"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("55"))
	t.SetStyles(styles)

	return &AdminScreen{
		store:     store,
		dashboard: dashboard,
		inventory: t,
		doctors:   newDoctorsTable(store, styles),
	}
}

func newDoctorsTable(store *catalog.Store, styles table.Styles) table.Model {
	columns := []table.Column{
		{Title: "Doctor", Width: 18},
		{Title: "Specialty", Width: 18},
		{Title: "Experience", Width: 11},
		{Title: "Rating", Width: 7},
		{Title: "Slots open", Width: 10},
	}

	doctors := store.AllDoctors()
	rows := make([]table.Row, len(doctors))
	for i, d := range doctors {
		rows[i] = table.Row{
			d.Name,
			d.Specialty,
			fmt.Sprintf("%d yrs", d.Experience),
			fmt.Sprintf("%.1f", d.Rating),
			fmt.Sprintf("%d", len(d.AvailableSlots)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	t.SetStyles(styles)
	return t
}

// Init implements tea.Model.
func (s *AdminScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *AdminScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.done = true
			return s, nil
		case "tab", "right":
			s.cyclePanel(1)
			return s, nil
		case "shift+tab", "left":
			s.cyclePanel(-1)
			return s, nil
		case "1":
			s.dashboard.SelectView(reporting.ViewOverview)
			return s, nil
		case "2":
			s.dashboard.SelectView(reporting.ViewDiseases)
			return s, nil
		case "3":
			s.dashboard.SelectView(reporting.ViewInventory)
			return s, nil
		case "4":
			s.dashboard.SelectView(reporting.ViewReports)
			return s, nil
		case "5":
			s.dashboard.SelectView(reporting.ViewDoctors)
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.dashboard.View() {
	case reporting.ViewInventory:
		s.inventory, cmd = s.inventory.Update(msg)
	case reporting.ViewDoctors:
		s.doctors, cmd = s.doctors.Update(msg)
	}
	return s, cmd
}

func (s *AdminScreen) cyclePanel(step int) {
	for i, v := range adminPanels {
		if v == s.dashboard.View() {
			next := (i + step + len(adminPanels)) % len(adminPanels)
			s.dashboard.SelectView(adminPanels[next])
			return
		}
	}
}

// View implements tea.Model.
func (s *AdminScreen) View() string {
	title := components.TitleStyle.Render("ADMINISTRATOR DASHBOARD")
	tabs := s.renderTabs()

	var body string
	switch s.dashboard.View() {
	case reporting.ViewDiseases:
		body = s.renderDiseases()
	case reporting.ViewInventory:
		body = s.inventory.View()
	case reporting.ViewReports:
		body = s.renderReports()
	case reporting.ViewDoctors:
		body = s.doctors.View()
	default:
		body = s.renderOverview()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		tabs,
		"",
		body,
		"",
		components.HelpStyle.Render("Tab/1-5: Switch panel | Esc: Back to role selection"),
	)
}

func (s *AdminScreen) renderTabs() string {
	var parts []string
	for i, v := range adminPanels {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == s.dashboard.View() {
			parts = append(parts, components.AccentStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, components.LabelStyle.Render(" "+label+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *AdminScreen) renderOverview() string {
	trending, cases := s.dashboard.TrendingDisease()
	totals := s.dashboard.RevenueTotals()

	var beds catalog.BedCounts
	for _, h := range s.store.Hospitals() {
		beds.Free += h.Beds.Free
		beds.Occupied += h.Beds.Occupied
		beds.Cleaning += h.Beds.Cleaning
	}

	lowStock := s.dashboard.LowStock()
	stockLine := components.SuccessStyle.Render("All medicines sufficiently stocked")
	if len(lowStock) > 0 {
		stockLine = components.WarnStyle.Render(fmt.Sprintf("%d medicine(s) need reordering", len(lowStock)))
	}

	return components.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		components.KeyValue("Trending disease", fmt.Sprintf("%s (%d cases this month)", trending, cases)),
		components.KeyValue("Beds", fmt.Sprintf("%d free / %d occupied / %d cleaning", beds.Free, beds.Occupied, beds.Cleaning)),
		components.KeyValue("Net revenue (6 months)", fmt.Sprintf("Rs %d", totals.Net)),
		stockLine,
	))
}

func (s *AdminScreen) renderDiseases() string {
	var lines []string
	lines = append(lines, components.ValueStyle.Render("Monthly case counts"))
	for _, t := range s.store.DiseaseTrends() {
		parts := []string{fmt.Sprintf("%-4s", t.Month)}
		for _, c := range t.Counts() {
			parts = append(parts, fmt.Sprintf("%s %3d", c.Name, c.Count))
		}
		lines = append(lines, components.LabelStyle.Render(strings.Join(parts, " | ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *AdminScreen) renderReports() string {
	var lines []string
	lines = append(lines, components.ValueStyle.Render("Monthly revenue"))
	for _, r := range s.store.MonthlyRevenue() {
		lines = append(lines, components.LabelStyle.Render(fmt.Sprintf(
			"%-4s revenue Rs %7d | expenses Rs %7d | net Rs %7d",
			r.Month, r.Revenue, r.Expenses, r.Revenue-r.Expenses,
		)))
	}

	totals := s.dashboard.RevenueTotals()
	lines = append(lines, "",
		components.KeyValue("Total revenue", fmt.Sprintf("Rs %d", totals.Revenue)),
		components.KeyValue("Total expenses", fmt.Sprintf("Rs %d", totals.Expenses)),
		components.KeyValue("Net", fmt.Sprintf("Rs %d", totals.Net)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Done returns true once the user leaves the dashboard.
func (s *AdminScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user quit the application.
func (s *AdminScreen) Cancelled() bool {
	return s.cancelled
}
