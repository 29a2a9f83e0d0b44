package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML representation of a complete catalog file.
type Config struct {
	Hospitals []HospitalYAML     `yaml:"hospitals"`
	Doctors   []DoctorYAML       `yaml:"doctors"`
	Patients  []PatientYAML      `yaml:"patients"`
	Medicines []MedicineYAML     `yaml:"medicines,omitempty"`
	Trends    []DiseaseTrendYAML `yaml:"disease_trends,omitempty"`
	Revenue   []RevenueYAML      `yaml:"monthly_revenue,omitempty"`
}

// HospitalYAML holds a hospital entry with YAML tags.
type HospitalYAML struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Distance    string  `yaml:"distance"`
	Fees        int     `yaml:"fees"`
	BedsFree    int     `yaml:"beds_free"`
	BedsUsed    int     `yaml:"beds_occupied"`
	BedsClean   int     `yaml:"beds_cleaning"`
	WaitingTime string  `yaml:"waiting_time"`
	Rating      float64 `yaml:"rating"`
}

// DoctorYAML holds a doctor entry with YAML tags.
type DoctorYAML struct {
	ID         int      `yaml:"id"`
	Name       string   `yaml:"name"`
	Specialty  string   `yaml:"specialty"`
	Experience int      `yaml:"experience"`
	Rating     float64  `yaml:"rating"`
	Slots      []string `yaml:"available_slots"`
	HospitalID int      `yaml:"hospital_id"`
}

// PatientYAML holds a patient entry with YAML tags.
type PatientYAML struct {
	ID              int      `yaml:"id"`
	Name            string   `yaml:"name"`
	Age             int      `yaml:"age"`
	Gender          string   `yaml:"gender"`
	Disease         string   `yaml:"disease"`
	Message         string   `yaml:"message"`
	AppointmentTime string   `yaml:"appointment_time"`
	Status          string   `yaml:"status"`
	MedicalHistory  []string `yaml:"medical_history,omitempty"`
	PastMedicines   []string `yaml:"past_medicines,omitempty"`
	AISummary       string   `yaml:"ai_summary,omitempty"`
}

// MedicineYAML holds a medicine entry with YAML tags.
type MedicineYAML struct {
	ID           int     `yaml:"id"`
	Name         string  `yaml:"name"`
	Stock        int     `yaml:"stock"`
	Price        float64 `yaml:"price"`
	Expiry       string  `yaml:"expiry"`
	ReorderLevel int     `yaml:"reorder_level"`
}

// DiseaseTrendYAML holds one month of disease counts with YAML tags.
type DiseaseTrendYAML struct {
	Month        string `yaml:"month"`
	Flu          int    `yaml:"flu"`
	Diabetes     int    `yaml:"diabetes"`
	Hypertension int    `yaml:"hypertension"`
	Covid        int    `yaml:"covid"`
}

// RevenueYAML holds one month of revenue figures with YAML tags.
type RevenueYAML struct {
	Month    string `yaml:"month"`
	Revenue  int    `yaml:"revenue"`
	Expenses int    `yaml:"expenses"`
}

// LoadFromYAML reads a catalog file and builds a validated store.
func LoadFromYAML(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	return cfg.toStore()
}

// SaveToYAML writes the store's catalogs to a YAML file.
func SaveToYAML(s *Store, path string) error {
	cfg := fromStore(s)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}

	return nil
}

func (c *Config) toStore() (*Store, error) {
	hospitals := make([]Hospital, len(c.Hospitals))
	for i, h := range c.Hospitals {
		hospitals[i] = Hospital{
			ID:          h.ID,
			Name:        h.Name,
			Distance:    h.Distance,
			Fees:        h.Fees,
			Beds:        BedCounts{Free: h.BedsFree, Occupied: h.BedsUsed, Cleaning: h.BedsClean},
			WaitingTime: h.WaitingTime,
			Rating:      h.Rating,
		}
	}

	doctors := make([]Doctor, len(c.Doctors))
	for i, d := range c.Doctors {
		doctors[i] = Doctor{
			ID:             d.ID,
			Name:           d.Name,
			Specialty:      d.Specialty,
			Experience:     d.Experience,
			Rating:         d.Rating,
			AvailableSlots: d.Slots,
			HospitalID:     d.HospitalID,
		}
	}

	patients := make([]PatientRecord, len(c.Patients))
	for i, p := range c.Patients {
		status := PatientStatus(p.Status)
		if p.Status == "" {
			status = StatusWaiting
		}
		patients[i] = PatientRecord{
			ID:              p.ID,
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			Disease:         p.Disease,
			Message:         p.Message,
			AppointmentTime: p.AppointmentTime,
			Status:          status,
			MedicalHistory:  p.MedicalHistory,
			PastMedicines:   p.PastMedicines,
			AISummary:       p.AISummary,
		}
	}

	medicines := make([]Medicine, len(c.Medicines))
	for i, m := range c.Medicines {
		medicines[i] = Medicine{
			ID:           m.ID,
			Name:         m.Name,
			Stock:        m.Stock,
			Price:        m.Price,
			Expiry:       m.Expiry,
			ReorderLevel: m.ReorderLevel,
		}
	}

	trends := make([]DiseaseTrend, len(c.Trends))
	for i, t := range c.Trends {
		trends[i] = DiseaseTrend(t)
	}

	revenue := make([]RevenueEntry, len(c.Revenue))
	for i, r := range c.Revenue {
		revenue[i] = RevenueEntry(r)
	}

	return NewStore(hospitals, doctors, patients, medicines, trends, revenue)
}

func fromStore(s *Store) *Config {
	cfg := &Config{}

	for _, h := range s.Hospitals() {
		cfg.Hospitals = append(cfg.Hospitals, HospitalYAML{
			ID:          h.ID,
			Name:        h.Name,
			Distance:    h.Distance,
			Fees:        h.Fees,
			BedsFree:    h.Beds.Free,
			BedsUsed:    h.Beds.Occupied,
			BedsClean:   h.Beds.Cleaning,
			WaitingTime: h.WaitingTime,
			Rating:      h.Rating,
		})
	}

	for _, d := range s.AllDoctors() {
		cfg.Doctors = append(cfg.Doctors, DoctorYAML{
			ID:         d.ID,
			Name:       d.Name,
			Specialty:  d.Specialty,
			Experience: d.Experience,
			Rating:     d.Rating,
			Slots:      d.AvailableSlots,
			HospitalID: d.HospitalID,
		})
	}

	for _, p := range s.Patients() {
		cfg.Patients = append(cfg.Patients, PatientYAML{
			ID:              p.ID,
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			Disease:         p.Disease,
			Message:         p.Message,
			AppointmentTime: p.AppointmentTime,
			Status:          string(p.Status),
			MedicalHistory:  p.MedicalHistory,
			PastMedicines:   p.PastMedicines,
			AISummary:       p.AISummary,
		})
	}

	for _, m := range s.Medicines() {
		cfg.Medicines = append(cfg.Medicines, MedicineYAML{
			ID:           m.ID,
			Name:         m.Name,
			Stock:        m.Stock,
			Price:        m.Price,
			Expiry:       m.Expiry,
			ReorderLevel: m.ReorderLevel,
		})
	}

	for _, t := range s.DiseaseTrends() {
		cfg.Trends = append(cfg.Trends, DiseaseTrendYAML(t))
	}

	for _, r := range s.MonthlyRevenue() {
		cfg.Revenue = append(cfg.Revenue, RevenueYAML(r))
	}

	return cfg
}
