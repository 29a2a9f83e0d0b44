package catalog

import "testing"

func TestDoctors_FilterByHospitalPreservesOrder(t *testing.T) {
	s := Default()

	for _, h := range s.Hospitals() {
		prevID := 0
		for _, d := range s.Doctors(h.ID) {
			if d.HospitalID != h.ID {
				t.Errorf("Doctors(%d) returned doctor %q of hospital %d", h.ID, d.Name, d.HospitalID)
			}
			if d.ID <= prevID {
				t.Errorf("Doctors(%d) out of catalog order at doctor %q", h.ID, d.Name)
			}
			prevID = d.ID
		}
	}
}

func TestDoctors_UnknownHospitalIsEmpty(t *testing.T) {
	s := Default()
	if got := s.Doctors(42); len(got) != 0 {
		t.Errorf("Doctors(42) = %d entries, want empty", len(got))
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	s := Default()

	hospitals := s.Hospitals()
	hospitals[0].Name = "tampered"
	if fresh := s.Hospitals(); fresh[0].Name == "tampered" {
		t.Error("Hospitals() exposes internal slice")
	}

	patients := s.Patients()
	patients[0].Status = StatusCompleted
	if fresh := s.Patients(); fresh[0].Status == StatusCompleted {
		t.Error("Patients() exposes internal slice")
	}
}

func TestSetPatientStatus(t *testing.T) {
	s := Default()

	if !s.SetPatientStatus(1, StatusCompleted) {
		t.Fatal("SetPatientStatus(1) failed")
	}
	p, ok := s.Patient(1)
	if !ok || p.Status != StatusCompleted {
		t.Errorf("patient 1 status = %q, want completed", p.Status)
	}

	if s.SetPatientStatus(99, StatusCompleted) {
		t.Error("SetPatientStatus succeeded for unknown patient")
	}
}

func TestNewStore_Validation(t *testing.T) {
	cases := []struct {
		name      string
		hospitals []Hospital
		doctors   []Doctor
		patients  []PatientRecord
	}{
		{
			name:      "rating above range",
			hospitals: []Hospital{{ID: 1, Name: "H", Rating: 5.5}},
		},
		{
			name:      "negative bed count",
			hospitals: []Hospital{{ID: 1, Name: "H", Beds: BedCounts{Free: -1}}},
		},
		{
			name:      "duplicate hospital id",
			hospitals: []Hospital{{ID: 1, Name: "H"}, {ID: 1, Name: "H2"}},
		},
		{
			name:      "doctor with unknown hospital",
			hospitals: []Hospital{{ID: 1, Name: "H"}},
			doctors:   []Doctor{{ID: 1, Name: "D", HospitalID: 2}},
		},
		{
			name:      "negative experience",
			hospitals: []Hospital{{ID: 1, Name: "H"}},
			doctors:   []Doctor{{ID: 1, Name: "D", HospitalID: 1, Experience: -1}},
		},
		{
			name:     "unknown patient status",
			patients: []PatientRecord{{ID: 1, Name: "P", Status: "asleep"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewStore(tc.hospitals, tc.doctors, tc.patients, nil, nil, nil); err == nil {
				t.Error("NewStore accepted invalid catalog")
			}
		})
	}
}

func TestDiseaseTrend_Counts(t *testing.T) {
	tr := DiseaseTrend{Month: "Jan", Flu: 1, Diabetes: 2, Hypertension: 3, Covid: 4}

	got := tr.Counts()
	want := []DiseaseCount{
		{Name: "Seasonal Flu", Count: 1},
		{Name: "Hypertension", Count: 3},
		{Name: "Diabetes", Count: 2},
		{Name: "COVID-19", Count: 4},
	}
	if len(got) != len(want) {
		t.Fatalf("Counts() = %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Counts()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPredict_IsStable(t *testing.T) {
	s := Default()
	p := s.Predict("fever and cough")
	if p.Department != "General Medicine" || p.WaitingTime != "15-20 minutes" || p.ConfidencePercent != 92 {
		t.Errorf("Predict returned %+v, want the static triage stub", p)
	}
	if p != s.Predict("completely different text") {
		t.Error("Predict varies with input, want a stable stub")
	}
}
