package requests

// InboundMessage is the webhook payload delivered by the SMS gateway.
// Patient identification is optional; unidentified messages are still stored.
type InboundMessage struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Message     string `json:"message" validate:"required"`
	PatientID   string `json:"patientId,omitempty"`
	PatientName string `json:"patientName,omitempty"`
	Category    string `json:"type,omitempty" validate:"omitempty,oneof=symptom medication general emergency checkup response"`

	// ProviderMessageID is the gateway's delivery id, used to deduplicate
	// webhook retries.
	ProviderMessageID string                 `json:"messageId,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// SendMessage needs a destination: either an explicit phone number or a
// patient whose profile carries one.
type SendMessage struct {
	PatientID   string `json:"patientId,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"required_without=PatientID,omitempty,phone_number"`
	Message     string `json:"message" validate:"required"`
	Category    string `json:"type,omitempty" validate:"omitempty,oneof=symptom medication general emergency checkup response"`
}

type ListMessages struct {
	Status    string
	Category  string
	PatientID string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type MarkMessagesRead struct {
	MessageIDs []string `json:"messageIds,omitempty"`
}

// GatewaySend is the payload posted to the external SMS delivery service.
type GatewaySend struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// UrgentAlert is published to the alert queue when an inbound message is
// triaged as urgent.
type UrgentAlert struct {
	MessageID   string `json:"messageId"`
	PatientID   string `json:"patientId,omitempty"`
	PatientName string `json:"patientName"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
	Category    string `json:"type"`
	Timestamp   string `json:"timestamp"`
}
