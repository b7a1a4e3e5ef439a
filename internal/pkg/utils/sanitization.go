package utils

import (
	"postcare-service/internal/pkg/dto/requests"
	"strings"
)

// NormalizeEmail lowercases and trims an address; all email lookups and
// writes go through this so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = NormalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	input.UserType = strings.ToLower(strings.TrimSpace(input.UserType))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
	input.Title = strings.TrimSpace(input.Title)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	input.ContactNumber = strings.TrimSpace(input.ContactNumber)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = NormalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
}

func SanitizeRegisterPatientByProviderRequest(input *requests.RegisterPatientByProvider) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
}

func SanitizeSendMessageRequest(input *requests.SendMessage) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Message = strings.TrimSpace(input.Message)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
}

func SanitizeInboundMessageRequest(input *requests.InboundMessage) {
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Category = strings.ToLower(strings.TrimSpace(input.Category))
	input.ProviderMessageID = strings.TrimSpace(input.ProviderMessageID)
}
