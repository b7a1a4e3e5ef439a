package models

import "time"

// SMSMessage is one attempted communication, inbound or outbound. Direction
// is immutable after creation; only Status and Processed change afterwards.
type SMSMessage struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	PatientID   string    `json:"patientId,omitempty" bson:"patientId,omitempty"`
	PatientName string    `json:"patientName" bson:"patientName"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	Message     string    `json:"message" bson:"message"`
	Direction   string    `json:"direction" bson:"direction"`
	Status      string    `json:"status" bson:"status"`
	Category    string    `json:"type" bson:"type"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	Processed   bool      `json:"processed" bson:"processed"`

	// ProviderMessageID is the gateway delivery id of an inbound webhook,
	// kept for replay detection when the dedup cache has expired.
	ProviderMessageID string                 `json:"providerMessageId,omitempty" bson:"providerMessageId,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	TimeModel         `bson:",inline"`
}
