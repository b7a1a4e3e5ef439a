package requests

// UpdateProfile is a partial update; only fields belonging to the caller's
// role schema are applied, everything else is ignored. Role itself is never
// mutable through this path.
type UpdateProfile struct {
	// Patient fields
	FirstName        string                `json:"firstName,omitempty"`
	LastName         string                `json:"lastName,omitempty"`
	DateOfBirth      string                `json:"dateOfBirth,omitempty"`
	PhoneNumber      string                `json:"phoneNumber,omitempty"`
	EmergencyContact string                `json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory,omitempty"`
	Surgeries        []Surgery             `json:"surgeries,omitempty"`
	Medications      []Medication          `json:"medications,omitempty"`
	RecoveryProgress []RecoveryNote        `json:"recoveryProgress,omitempty"`

	// Healthcare provider fields
	Title             string             `json:"title,omitempty"`
	Specialization    string             `json:"specialization,omitempty"`
	LicenseNumber     string             `json:"licenseNumber,omitempty"`
	YearsOfExperience int                `json:"yearsOfExperience,omitempty"`
	Appointments      []Appointment      `json:"appointments,omitempty"`
	Availability      []AvailabilitySlot `json:"availability,omitempty"`

	// Hospital fields
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

type RecoveryNote struct {
	Date      string   `json:"date,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	PainLevel int      `json:"painLevel,omitempty"`
	Symptoms  []string `json:"symptoms,omitempty"`
}

type Appointment struct {
	PatientID string `json:"patient"`
	Date      string `json:"date,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
