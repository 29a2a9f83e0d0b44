package catalog

// Default returns the built-in demo dataset. The catalogs never fail
// validation, so the error path is unreachable for this data.
func Default() *Store {
	s, err := NewStore(defaultHospitals(), defaultDoctors(), defaultPatients(), defaultMedicines(), defaultTrends(), defaultRevenue())
	if err != nil {
		panic("catalog: built-in dataset invalid: " + err.Error())
	}
	return s
}

func defaultHospitals() []Hospital {
	return []Hospital{
		{
			ID:          1,
			Name:        "AIIMS",
			Distance:    "2.3 km",
			Fees:        500,
			Beds:        BedCounts{Free: 12, Occupied: 45, Cleaning: 3},
			WaitingTime: "15 min",
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "Central Medical Center",
			Distance:    "3.8 km",
			Fees:        700,
			Beds:        BedCounts{Free: 8, Occupied: 38, Cleaning: 4},
			WaitingTime: "25 min",
			Rating:      4.9,
		},
		{
			ID:          3,
			Name:        "MediCare Plus Hospital",
			Distance:    "1.5 km",
			Fees:        400,
			Beds:        BedCounts{Free: 5, Occupied: 52, Cleaning: 2},
			WaitingTime: "10 min",
			Rating:      4.7,
		},
	}
}

func defaultDoctors() []Doctor {
	return []Doctor{
		{
			ID:             1,
			Name:           "Dr. Mrinal",
			Specialty:      "General Physician",
			Experience:     5,
			Rating:         4.8,
			AvailableSlots: []string{"10:00 AM", "11:30 AM", "2:00 PM", "4:30 PM"},
			HospitalID:     1,
		},
		{
			ID:             2,
			Name:           "Dr. Priya Sharma",
			Specialty:      "General Medicine",
			Experience:     12,
			Rating:         4.9,
			AvailableSlots: []string{"9:30 AM", "1:00 PM", "3:30 PM", "5:00 PM"},
			HospitalID:     1,
		},
		{
			ID:             3,
			Name:           "Dr. Kashish",
			Specialty:      "Internal Medicine",
			Experience:     18,
			Rating:         4.7,
			AvailableSlots: []string{"11:00 AM", "2:30 PM", "4:00 PM"},
			HospitalID:     1,
		},
	}
}

func defaultPatients() []PatientRecord {
	return []PatientRecord{
		{
			ID:              1,
			Name:            "Sonal Kumari",
			Age:             28,
			Gender:          "Female",
			Disease:         "Seasonal Flu",
			Message:         "Severe headache and fever since yesterday",
			AppointmentTime: "10:30 AM",
			Status:          StatusWaiting,
			MedicalHistory:  []string{"Allergic to Penicillin", "Had flu vaccine in 2025", "No chronic conditions"},
			PastMedicines:   []string{"Paracetamol 500mg", "Cetirizine 10mg", "Vitamin C"},
			AISummary:       "Patient presents with acute flu symptoms. History shows good response to standard flu treatment. No red flags. Recommended: Symptomatic treatment with rest and hydration.",
		},
		{
			ID:              2,
			Name:            "Rajesh Kumar",
			Age:             45,
			Gender:          "Male",
			Disease:         "Hypertension",
			Message:         "Regular checkup for blood pressure monitoring",
			AppointmentTime: "11:00 AM",
			Status:          StatusWaiting,
			MedicalHistory:  []string{"Hypertension diagnosed 2023", "Family history of heart disease", "Non-smoker"},
			PastMedicines:   []string{"Amlodipine 5mg", "Atorvastatin 10mg"},
			AISummary:       "Long-term hypertension patient with stable condition on current medication. BP trends show good control. Continue current regimen with regular monitoring.",
		},
		{
			ID:              3,
			Name:            "Priya Sharma",
			Age:             32,
			Gender:          "Female",
			Disease:         "Migraine",
			Message:         "Recurring migraine attacks, need pain management",
			AppointmentTime: "11:30 AM",
			Status:          StatusWaiting,
			MedicalHistory:  []string{"Chronic migraine since 2020", "Stress-related triggers", "No food allergies"},
			PastMedicines:   []string{"Sumatriptan 50mg", "Propranolol 40mg"},
			AISummary:       "Chronic migraine patient with known stress triggers. Previous treatment shows moderate success. Consider lifestyle modifications and prophylactic therapy adjustment.",
		},
		{
			ID:              4,
			Name:            "Amit Patel",
			Age:             55,
			Gender:          "Male",
			Disease:         "Type 2 Diabetes",
			Message:         "Blood sugar levels fluctuating, need consultation",
			AppointmentTime: "12:00 PM",
			Status:          StatusWaiting,
			MedicalHistory:  []string{"Type 2 Diabetes diagnosed 2019", "Overweight (BMI 28)", "Sedentary lifestyle"},
			PastMedicines:   []string{"Metformin 500mg", "Glimepiride 2mg"},
			AISummary:       "Diabetic patient with suboptimal glycemic control. Recent HbA1c suggests need for medication adjustment and lifestyle intervention. Referral to dietitian recommended.",
		},
	}
}

func defaultMedicines() []Medicine {
	return []Medicine{
		{ID: 1, Name: "Paracetamol 500mg", Stock: 2450, Price: 2.5, Expiry: "Dec 2026", ReorderLevel: 500},
		{ID: 2, Name: "Amoxicillin 250mg", Stock: 1820, Price: 12.0, Expiry: "Mar 2026", ReorderLevel: 500},
		{ID: 3, Name: "Metformin 500mg", Stock: 380, Price: 8.5, Expiry: "Jun 2026", ReorderLevel: 500},
		{ID: 4, Name: "Amlodipine 5mg", Stock: 1520, Price: 15.0, Expiry: "Sep 2026", ReorderLevel: 500},
		{ID: 5, Name: "Azithromycin 250mg", Stock: 890, Price: 18.5, Expiry: "Aug 2026", ReorderLevel: 500},
		{ID: 6, Name: "Insulin Glargine", Stock: 145, Price: 125.0, Expiry: "Feb 2026", ReorderLevel: 200},
	}
}

func defaultTrends() []DiseaseTrend {
	return []DiseaseTrend{
		{Month: "Aug", Flu: 120, Diabetes: 85, Hypertension: 95, Covid: 45},
		{Month: "Sep", Flu: 135, Diabetes: 88, Hypertension: 98, Covid: 38},
		{Month: "Oct", Flu: 165, Diabetes: 92, Hypertension: 102, Covid: 42},
		{Month: "Nov", Flu: 198, Diabetes: 96, Hypertension: 105, Covid: 35},
		{Month: "Dec", Flu: 245, Diabetes: 99, Hypertension: 108, Covid: 28},
		{Month: "Jan", Flu: 280, Diabetes: 103, Hypertension: 112, Covid: 32},
	}
}

func defaultRevenue() []RevenueEntry {
	return []RevenueEntry{
		{Month: "Aug", Revenue: 450000, Expenses: 320000},
		{Month: "Sep", Revenue: 480000, Expenses: 325000},
		{Month: "Oct", Revenue: 510000, Expenses: 340000},
		{Month: "Nov", Revenue: 525000, Expenses: 345000},
		{Month: "Dec", Revenue: 580000, Expenses: 360000},
		{Month: "Jan", Revenue: 620000, Expenses: 375000},
	}
}
