package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingUserIDKey      = "user_id"
	LoggingProfileIDKey   = "profile_id"
	LoggingMessageIDKey   = "message_id"
	LoggingPhoneNumberKey = "phone_number"
	LoggingQueueNameKey   = "queue_name"
	LoggingEmailKey       = "email"
)
