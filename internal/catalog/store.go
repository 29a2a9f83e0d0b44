package catalog

import "fmt"

// Store is the reference data store shared by every dashboard. All catalogs
// are fixed at construction; SetPatientStatus is the single mutator and only
// touches the status field of a patient record.
type Store struct {
	hospitals []Hospital
	doctors   []Doctor
	patients  []PatientRecord
	medicines []Medicine
	trends    []DiseaseTrend
	revenue   []RevenueEntry
}

// NewStore validates the supplied catalogs and builds a store. Catalog order
// is preserved and becomes the order every accessor returns.
func NewStore(hospitals []Hospital, doctors []Doctor, patients []PatientRecord, medicines []Medicine, trends []DiseaseTrend, revenue []RevenueEntry) (*Store, error) {
	byID := make(map[int]bool, len(hospitals))
	for _, h := range hospitals {
		if h.Rating < 0 || h.Rating > 5 {
			return nil, fmt.Errorf("hospital %q: rating %.1f out of range [0,5]", h.Name, h.Rating)
		}
		if h.Beds.Free < 0 || h.Beds.Occupied < 0 || h.Beds.Cleaning < 0 {
			return nil, fmt.Errorf("hospital %q: negative bed count", h.Name)
		}
		if byID[h.ID] {
			return nil, fmt.Errorf("hospital %q: duplicate id %d", h.Name, h.ID)
		}
		byID[h.ID] = true
	}

	for _, d := range doctors {
		if d.Rating < 0 || d.Rating > 5 {
			return nil, fmt.Errorf("doctor %q: rating %.1f out of range [0,5]", d.Name, d.Rating)
		}
		if d.Experience < 0 {
			return nil, fmt.Errorf("doctor %q: negative experience", d.Name)
		}
		if !byID[d.HospitalID] {
			return nil, fmt.Errorf("doctor %q: unknown hospital id %d", d.Name, d.HospitalID)
		}
	}

	for _, p := range patients {
		switch p.Status {
		case StatusWaiting, StatusInProgress, StatusCompleted:
		default:
			return nil, fmt.Errorf("patient %q: unknown status %q", p.Name, p.Status)
		}
	}

	return &Store{
		hospitals: hospitals,
		doctors:   doctors,
		patients:  patients,
		medicines: medicines,
		trends:    trends,
		revenue:   revenue,
	}, nil
}

// Hospitals returns all hospitals in catalog order.
func (s *Store) Hospitals() []Hospital {
	out := make([]Hospital, len(s.hospitals))
	copy(out, s.hospitals)
	return out
}

// Hospital looks up a hospital by id.
func (s *Store) Hospital(id int) (Hospital, bool) {
	for _, h := range s.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return Hospital{}, false
}

// Doctors returns the doctors attached to the given hospital, preserving
// catalog order. An unknown hospital id yields an empty list, not an error.
func (s *Store) Doctors(hospitalID int) []Doctor {
	var out []Doctor
	for _, d := range s.doctors {
		if d.HospitalID == hospitalID {
			out = append(out, d)
		}
	}
	return out
}

// AllDoctors returns every doctor in catalog order, regardless of hospital.
func (s *Store) AllDoctors() []Doctor {
	out := make([]Doctor, len(s.doctors))
	copy(out, s.doctors)
	return out
}

// Doctor looks up a doctor by id.
func (s *Store) Doctor(id int) (Doctor, bool) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// Patients returns the patient queue in catalog order.
func (s *Store) Patients() []PatientRecord {
	out := make([]PatientRecord, len(s.patients))
	copy(out, s.patients)
	return out
}

// Patient looks up a patient by id.
func (s *Store) Patient(id int) (PatientRecord, bool) {
	for _, p := range s.patients {
		if p.ID == id {
			return p, true
		}
	}
	return PatientRecord{}, false
}

// SetPatientStatus updates the status of one patient record. It is the only
// mutation the store supports. Returns false if the patient does not exist.
func (s *Store) SetPatientStatus(id int, status PatientStatus) bool {
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients[i].Status = status
			return true
		}
	}
	return false
}

// Medicines returns the medicine inventory in catalog order.
func (s *Store) Medicines() []Medicine {
	out := make([]Medicine, len(s.medicines))
	copy(out, s.medicines)
	return out
}

// DiseaseTrends returns the monthly disease case series.
func (s *Store) DiseaseTrends() []DiseaseTrend {
	out := make([]DiseaseTrend, len(s.trends))
	copy(out, s.trends)
	return out
}

// MonthlyRevenue returns the monthly revenue series.
func (s *Store) MonthlyRevenue() []RevenueEntry {
	out := make([]RevenueEntry, len(s.revenue))
	copy(out, s.revenue)
	return out
}
