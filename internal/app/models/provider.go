package models

import "time"

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

type ProviderProfile struct {
	ID                string             `json:"_id" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	Specialization    string             `json:"specialization" bson:"specialization"`
	LicenseNumber     string             `json:"licenseNumber" bson:"licenseNumber"`
	YearsOfExperience int                `json:"yearsOfExperience" bson:"yearsOfExperience"`
	Patients          []string           `json:"patients,omitempty" bson:"patients,omitempty"`
	Appointments      []Appointment      `json:"appointments,omitempty" bson:"appointments,omitempty"`
	Availability      []AvailabilitySlot `json:"availability,omitempty" bson:"availability,omitempty"`
	TimeModel         `bson:",inline"`
}

type Appointment struct {
	PatientID string    `json:"patient" bson:"patient"`
	Date      time.Time `json:"date" bson:"date"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    string    `json:"status" bson:"status"`
}

type AvailabilitySlot struct {
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}
