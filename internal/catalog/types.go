// Package catalog provides the read-only reference data the dashboards are
// rendered from: hospitals, doctors, the patient queue, medicine inventory and
// the administrative statistics series.
package catalog

// BedCounts tracks bed availability for a hospital. The three counts are
// independent tallies and do not need to sum to a fixed capacity.
type BedCounts struct {
	Free     int
	Occupied int
	Cleaning int
}

// Hospital is an immutable hospital entry.
type Hospital struct {
	ID          int
	Name        string
	Distance    string
	Fees        int
	Beds        BedCounts
	WaitingTime string
	Rating      float64
}

// Doctor is an immutable doctor entry. AvailableSlots preserves the order the
// slots were declared in; duplicates are not rejected.
type Doctor struct {
	ID             int
	Name           string
	Specialty      string
	Experience     int
	Rating         float64
	AvailableSlots []string
	HospitalID     int
}

// PatientStatus is the triage status of a queued patient.
type PatientStatus string

const (
	StatusWaiting    PatientStatus = "waiting"
	StatusInProgress PatientStatus = "in-progress"
	StatusCompleted  PatientStatus = "completed"
)

// PatientRecord is a patient in the clinician's queue. MedicalHistory,
// PastMedicines and AISummary are optional; an absent value is an empty slice
// or empty string, never a nil-vs-empty distinction callers must care about.
type PatientRecord struct {
	ID              int
	Name            string
	Age             int
	Gender          string
	Disease         string
	Message         string
	AppointmentTime string
	Status          PatientStatus
	MedicalHistory  []string
	PastMedicines   []string
	AISummary       string
}

// Medicine is an inventory entry for the administrator dashboard.
type Medicine struct {
	ID           int
	Name         string
	Stock        int
	Price        float64
	Expiry       string
	ReorderLevel int
}

// DiseaseTrend holds per-disease case counts for one month.
type DiseaseTrend struct {
	Month        string
	Flu          int
	Diabetes     int
	Hypertension int
	Covid        int
}

// DiseaseCount pairs a tracked disease's display name with its case count.
type DiseaseCount struct {
	Name  string
	Count int
}

// Counts returns the month's case counts with their display names. The order
// is fixed so callers can render and compare deterministically.
func (t DiseaseTrend) Counts() []DiseaseCount {
	return []DiseaseCount{
		{Name: "Seasonal Flu", Count: t.Flu},
		{Name: "Hypertension", Count: t.Hypertension},
		{Name: "Diabetes", Count: t.Diabetes},
		{Name: "COVID-19", Count: t.Covid},
	}
}

// RevenueEntry holds revenue and expenses for one month.
type RevenueEntry struct {
	Month    string
	Revenue  int
	Expenses int
}

// Prediction is the triage suggestion shown after symptom submission. The
// values are supplied by the data layer; the workflows only decide when to
// display them.
type Prediction struct {
	Department        string
	WaitingTime       string
	ConfidencePercent int
}
