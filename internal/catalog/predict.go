package catalog

// Predict returns the triage suggestion shown after symptom submission. This
// is a static stub standing in for a real inference service; the workflow
// contracts do not change if it is replaced by one, so the symptom text is
// accepted but not inspected.
func (s *Store) Predict(symptoms string) Prediction {
	_ = symptoms
	return Prediction{
		Department:        "General Medicine",
		WaitingTime:       "15-20 minutes",
		ConfidencePercent: 92,
	}
}
