package model

import "strings"

// MedicineItem is one line of a prescription.
type MedicineItem struct {
	EnglishName string `json:"englishName"`
	BengaliName string `json:"bengaliName"`
	GenericName string `json:"genericName"`
	Purpose     string `json:"purpose"`
	Dosage      string `json:"dosage"`
}

// Prescription is an AI-generated prescription. The patient fields are a
// snapshot taken at request time and do not follow later profile edits.
type Prescription struct {
	ID            string         `json:"id" example:"RX-1A2B3C4D"`
	UserID        string         `json:"userId"`
	PatientName   string         `json:"patientName"`
	PatientAge    string         `json:"patientAge"`
	PatientGender string         `json:"patientGender"`
	Diagnosis     string         `json:"diagnosis"`
	Medicines     []MedicineItem `json:"medicines"`
	Advice        string         `json:"advice"`
	Date          string         `json:"date"`
}

func (p Prescription) Clone() Prescription {
	if p.Medicines != nil {
		p.Medicines = append([]MedicineItem(nil), p.Medicines...)
	}
	return p
}

// TestResult is a diagnostic test the patient already has a result for.
type TestResult struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Image  string `json:"image,omitempty"`
}

// MedicalRecord is the form a patient submits for diagnosis. It is not persisted.
type MedicalRecord struct {
	PatientName         string       `json:"patientName,omitempty"`
	PatientAge          string       `json:"patientAge,omitempty"`
	PatientGender       string       `json:"patientGender,omitempty"`
	Symptoms            []string     `json:"symptoms"`
	CustomSymptoms      string       `json:"customSymptoms"`
	PrevIllnesses       []string     `json:"prevIllnesses"`
	CustomPrevIllnesses string       `json:"customPrevIllnesses"`
	PastMeds            string       `json:"pastMeds"`
	Tests               []TestResult `json:"tests"`
	BP                  string       `json:"bp"`
	Diabetes            string       `json:"diabetes"`
}

// HasSymptoms reports whether at least one symptom was selected or typed.
func (r MedicalRecord) HasSymptoms() bool {
	for _, s := range r.Symptoms {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return strings.TrimSpace(r.CustomSymptoms) != ""
}
