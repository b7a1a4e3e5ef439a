package utils

import (
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/dto/requests"
)

func MapMedicalHistory(entries []requests.MedicalHistoryEntry) []models.MedicalHistoryEntry {
	if len(entries) == 0 {
		return nil
	}
	mapped := make([]models.MedicalHistoryEntry, 0, len(entries))
	for _, entry := range entries {
		mapped = append(mapped, models.MedicalHistoryEntry{
			Condition:     entry.Condition,
			DiagnosedDate: ParseOptionalDate(entry.DiagnosedDate),
			Notes:         entry.Notes,
		})
	}
	return mapped
}

func MapSurgeries(surgeries []requests.Surgery) []models.Surgery {
	if len(surgeries) == 0 {
		return nil
	}
	mapped := make([]models.Surgery, 0, len(surgeries))
	for _, surgery := range surgeries {
		mapped = append(mapped, models.Surgery{
			Type:    surgery.Type,
			Date:    ParseOptionalDate(surgery.Date),
			Surgeon: surgery.Surgeon,
			Notes:   surgery.Notes,
		})
	}
	return mapped
}

func MapMedications(medications []requests.Medication) []models.Medication {
	if len(medications) == 0 {
		return nil
	}
	mapped := make([]models.Medication, 0, len(medications))
	for _, medication := range medications {
		mapped = append(mapped, models.Medication{
			Name:      medication.Name,
			Dosage:    medication.Dosage,
			Frequency: medication.Frequency,
			StartDate: ParseOptionalDate(medication.StartDate),
			EndDate:   ParseOptionalDate(medication.EndDate),
		})
	}
	return mapped
}

func MapRecoveryProgress(notes []requests.RecoveryNote) []models.RecoveryNote {
	if len(notes) == 0 {
		return nil
	}
	mapped := make([]models.RecoveryNote, 0, len(notes))
	for _, note := range notes {
		entry := models.RecoveryNote{
			Notes:     note.Notes,
			PainLevel: note.PainLevel,
			Symptoms:  note.Symptoms,
		}
		if parsed := ParseOptionalDate(note.Date); parsed != nil {
			entry.Date = *parsed
		}
		mapped = append(mapped, entry)
	}
	return mapped
}

func MapAppointments(appointments []requests.Appointment) []models.Appointment {
	if len(appointments) == 0 {
		return nil
	}
	mapped := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		entry := models.Appointment{
			PatientID: appointment.PatientID,
			Notes:     appointment.Notes,
			Status:    appointment.Status,
		}
		if parsed := ParseOptionalDate(appointment.Date); parsed != nil {
			entry.Date = *parsed
		}
		mapped = append(mapped, entry)
	}
	return mapped
}

func MapAvailability(slots []requests.AvailabilitySlot) []models.AvailabilitySlot {
	if len(slots) == 0 {
		return nil
	}
	mapped := make([]models.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		mapped = append(mapped, models.AvailabilitySlot{
			Day:       slot.Day,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}
	return mapped
}
