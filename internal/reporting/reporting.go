// Package reporting derives the administrator dashboard figures from the
// reference catalogs. Everything here is a pure computation over store data;
// nothing is cached between renders.
package reporting

import "github.com/sanrach0178/Viksit-Health/internal/catalog"

// View selects which administrator panel is displayed.
type View string

const (
	ViewOverview  View = "overview"
	ViewDiseases  View = "diseases"
	ViewInventory View = "inventory"
	ViewReports   View = "reports"
	ViewDoctors   View = "doctors"
)

// StockStatus classifies a medicine's stock level against its reorder level.
type StockStatus string

const (
	StockGood     StockStatus = "good"
	StockLow      StockStatus = "low"
	StockCritical StockStatus = "critical"
)

// StatusFor classifies one inventory entry. Below the reorder level is low;
// below three quarters of it is critical.
func StatusFor(m catalog.Medicine) StockStatus {
	switch {
	case m.Stock*4 < m.ReorderLevel*3:
		return StockCritical
	case m.Stock < m.ReorderLevel:
		return StockLow
	default:
		return StockGood
	}
}

// Totals aggregates the monthly revenue series.
type Totals struct {
	Revenue  int
	Expenses int
	Net      int
}

// Dashboard holds the administrator view selection over the catalogs. The
// view selector is the only mutable piece; every figure is recomputed from
// the store on demand.
type Dashboard struct {
	store *catalog.Store
	view  View
}

// NewDashboard creates a dashboard showing the overview panel.
func NewDashboard(store *catalog.Store) *Dashboard {
	return &Dashboard{store: store, view: ViewOverview}
}

// View returns the selected panel.
func (d *Dashboard) View() View {
	return d.view
}

// SelectView switches panels. Unknown views fail the guard and keep the
// current panel.
func (d *Dashboard) SelectView(v View) bool {
	switch v {
	case ViewOverview, ViewDiseases, ViewInventory, ViewReports, ViewDoctors:
		d.view = v
		return true
	}
	return false
}

// Reset returns the dashboard to the overview panel.
func (d *Dashboard) Reset() {
	d.view = ViewOverview
}

// LowStock returns the medicines at or below low stock, in catalog order.
func (d *Dashboard) LowStock() []catalog.Medicine {
	var out []catalog.Medicine
	for _, m := range d.store.Medicines() {
		if StatusFor(m) != StockGood {
			out = append(out, m)
		}
	}
	return out
}

// RevenueTotals sums the monthly revenue series.
func (d *Dashboard) RevenueTotals() Totals {
	var t Totals
	for _, r := range d.store.MonthlyRevenue() {
		t.Revenue += r.Revenue
		t.Expenses += r.Expenses
	}
	t.Net = t.Revenue - t.Expenses
	return t
}

// TrendingDisease returns the disease with the highest case count in the
// latest month of the trend series, with its count. Empty series yields
// empty name and zero.
func (d *Dashboard) TrendingDisease() (string, int) {
	trends := d.store.DiseaseTrends()
	if len(trends) == 0 {
		return "", 0
	}

	var name string
	var count int
	for i, c := range trends[len(trends)-1].Counts() {
		if i == 0 || c.Count > count {
			name, count = c.Name, c.Count
		}
	}
	return name, count
}
