package models

import "time"

type PatientProfile struct {
	ID               string                `json:"_id" bson:"_id,omitempty"`
	FirstName        string                `json:"firstName" bson:"firstName"`
	LastName         string                `json:"lastName" bson:"lastName"`
	DateOfBirth      time.Time             `json:"dateOfBirth" bson:"dateOfBirth"`
	PhoneNumber      string                `json:"phoneNumber" bson:"phoneNumber"`
	EmergencyContact string                `json:"emergencyContact" bson:"emergencyContact"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory,omitempty" bson:"medicalHistory,omitempty"`
	Surgeries        []Surgery             `json:"surgeries,omitempty" bson:"surgeries,omitempty"`
	Medications      []Medication          `json:"medications,omitempty" bson:"medications,omitempty"`
	RecoveryProgress []RecoveryNote        `json:"recoveryProgress,omitempty" bson:"recoveryProgress,omitempty"`

	// RegisteredBy holds the identity id of the provider that created this
	// profile when self-registration was bypassed.
	RegisteredBy string `json:"registeredBy,omitempty" bson:"registeredBy,omitempty"`
	TimeModel    `bson:",inline"`
}

type MedicalHistoryEntry struct {
	Condition     string     `json:"condition" bson:"condition"`
	DiagnosedDate *time.Time `json:"diagnosedDate,omitempty" bson:"diagnosedDate,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Surgery struct {
	Type    string     `json:"type" bson:"type"`
	Date    *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Surgeon string     `json:"surgeon,omitempty" bson:"surgeon,omitempty"`
	Notes   string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Medication struct {
	Name      string     `json:"name" bson:"name"`
	Dosage    string     `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency string     `json:"frequency,omitempty" bson:"frequency,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

type RecoveryNote struct {
	Date      time.Time `json:"date" bson:"date"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	PainLevel int       `json:"painLevel,omitempty" bson:"painLevel,omitempty"`
	Symptoms  []string  `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
}
