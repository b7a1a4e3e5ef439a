package responses

import "time"

// DeliveryResult reports the gateway outcome for an outbound send. The
// message is stored regardless of Delivered.
type DeliveryResult struct {
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

type SendMessage struct {
	Message  interface{}    `json:"message"`
	Delivery DeliveryResult `json:"delivery"`
}

type RecentMessage struct {
	ID          string    `json:"_id"`
	PatientName string    `json:"patientName"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Category    string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
}

type MessageStatistics struct {
	Total      int64            `json:"total"`
	Unread     int64            `json:"unread"`
	Urgent     int64            `json:"urgent"`
	TodayCount int64            `json:"todayCount"`
	ByCategory map[string]int64 `json:"byType"`
	Recent     []RecentMessage  `json:"recent"`
}

type MarkMessagesRead struct {
	Updated int64 `json:"updated"`
}
