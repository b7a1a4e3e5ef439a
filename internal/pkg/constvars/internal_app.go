package constvars

type ContextKey string

const (
	CONTEXT_USER_KEY       ContextKey = "userData"
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
)

// User types mirror the role strings stored on identity documents. RoleDoctor
// is a legacy alias accepted by role gates but never stored.
const (
	UserTypePatient  = "patient"
	UserTypeProvider = "healthcare-provider"
	UserTypeHospital = "hospital"

	RoleDoctor = "doctor"
)

const (
	MessageDirectionInbound  = "inbound"
	MessageDirectionOutbound = "outbound"

	MessageStatusUnread   = "unread"
	MessageStatusRead     = "read"
	MessageStatusUrgent   = "urgent"
	MessageStatusArchived = "archived"

	MessageCategorySymptom    = "symptom"
	MessageCategoryMedication = "medication"
	MessageCategoryGeneral    = "general"
	MessageCategoryEmergency  = "emergency"
	MessageCategoryCheckup    = "checkup"
	MessageCategoryResponse   = "response"
)

// UnknownPatientName is the sentinel used when an inbound message cannot be
// resolved to a patient profile by phone number.
const UnknownPatientName = "Unknown Patient"

const (
	AppPaginationUrlFormat = "%s?page=%d&limit=%d"

	DefaultPageSize    = 10
	MaxPageSize        = 100
	RecentMessageCount = 5
	RecentBodyMaxChars = 100
)

const (
	MessageSortFieldTimestamp  = "timestamp"
	MessageSortOrderAscending  = "asc"
	MessageSortOrderDescending = "desc"
)

const (
	WebhookDedupKeyPrefix = "sms:webhook:"
)
