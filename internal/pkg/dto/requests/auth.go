package requests

// Register carries the flattened registration payload: credentials plus the
// profile fields of whichever role userType declares. The role-specific
// payload structs below are built from it at dispatch time so that required
// fields are validated per role, never across roles.
type Register struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	UserType string `json:"userType" validate:"required,user_type"`

	// Patient fields
	FirstName        string                `json:"firstName,omitempty"`
	LastName         string                `json:"lastName,omitempty"`
	DateOfBirth      string                `json:"dateOfBirth,omitempty"`
	PhoneNumber      string                `json:"phoneNumber,omitempty"`
	EmergencyContact string                `json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory,omitempty"`
	Surgeries        []Surgery             `json:"surgeries,omitempty"`
	Medications      []Medication          `json:"medications,omitempty"`

	// Healthcare provider fields
	Title             string `json:"title,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	LicenseNumber     string `json:"licenseNumber,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`

	// Hospital fields
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterPatientByProvider creates a patient profile without a login
// credential; only a healthcare provider may call it.
type RegisterPatientByProvider struct {
	FirstName        string                `json:"firstName" validate:"required"`
	LastName         string                `json:"lastName" validate:"required"`
	DateOfBirth      string                `json:"dateOfBirth" validate:"required"`
	PhoneNumber      string                `json:"phoneNumber" validate:"required,phone_number"`
	EmergencyContact string                `json:"emergencyContact,omitempty"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory,omitempty"`
	Surgeries        []Surgery             `json:"surgeries,omitempty"`
	Medications      []Medication          `json:"medications,omitempty"`
}

type PatientProfilePayload struct {
	FirstName        string                `json:"firstName" validate:"required"`
	LastName         string                `json:"lastName" validate:"required"`
	DateOfBirth      string                `json:"dateOfBirth" validate:"required"`
	PhoneNumber      string                `json:"phoneNumber" validate:"required,phone_number"`
	EmergencyContact string                `json:"emergencyContact" validate:"required"`
	MedicalHistory   []MedicalHistoryEntry `json:"medicalHistory,omitempty"`
	Surgeries        []Surgery             `json:"surgeries,omitempty"`
	Medications      []Medication          `json:"medications,omitempty"`
}

type ProviderProfilePayload struct {
	Title             string `json:"title" validate:"required"`
	Specialization    string `json:"specialization" validate:"required"`
	LicenseNumber     string `json:"licenseNumber" validate:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" validate:"min=0"`
}

type HospitalProfilePayload struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
}

type MedicalHistoryEntry struct {
	Condition     string `json:"condition"`
	DiagnosedDate string `json:"diagnosedDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type Surgery struct {
	Type    string `json:"type"`
	Date    string `json:"date,omitempty"`
	Surgeon string `json:"surgeon,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}
