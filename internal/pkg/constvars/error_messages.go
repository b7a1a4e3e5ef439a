package constvars

// Client messages are safe to surface to API consumers; Dev messages are only
// exposed outside production and in logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "Not authorized, no token"
	ErrClientTokenInvalid                  = "Not authorized, invalid token"
	ErrClientTokenExpired                  = "Not authorized, token expired"
	ErrClientUserNotFound                  = "Not authorized, user not found"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "User already exists"
	ErrClientInvalidUserType               = "Invalid user type"
	ErrClientProviderOnly                  = "Only healthcare providers can register patients"
	ErrClientProfileNotFound               = "Profile not found"
	ErrClientMessageNotFound               = "Message not found"
	ErrClientRoleForbiddenFormat           = "Access denied. This endpoint requires one of the following roles: %s. Your role: %s"
)

const (
	ErrDevCannotParseJSON        = "failed to parse JSON request body"
	ErrDevValidationFailed       = "request validation failed"
	ErrDevInvalidInput           = "invalid input"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing the request"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials supplied"
	ErrDevEmailAlreadyExists     = "email is already registered"
	ErrDevInvalidUserType        = "user type is not one of patient, healthcare-provider, hospital"
	ErrDevUserNotExists          = "user does not exist"
	ErrDevProfileNotExists       = "profile referenced by identity does not exist"
	ErrDevMessageNotExists       = "message does not exist"
	ErrDevCallerNotProvider      = "caller identity is not a healthcare provider"

	ErrDevAuthTokenMissing   = "authorization header missing or not a bearer token"
	ErrDevAuthTokenMalformed = "token is malformed"
	ErrDevAuthTokenExpired   = "token is expired"
	ErrDevAuthTokenInvalid   = "token signature or claims invalid"
	ErrDevAuthSigningMethod  = "unexpected token signing method"
	ErrDevAuthGenerateToken  = "failed to sign identity token"
	ErrDevAuthSecretMissing  = "JWT secret is not configured"
	ErrDevRoleNotAllowed     = "caller role is not in the allowed set"

	ErrDevDBFailedToFindDocument     = "failed to find document on database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "string cannot be converted to ObjectID"
	ErrDevDBDuplicateKey             = "unique index violation on database"

	ErrDevRedisGetData = "failed to get data from redis"
	ErrDevRedisSetData = "failed to set data to redis"

	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevSMSGatewayRejected = "SMS gateway responded with non-success status %d"
	ErrDevSMSGatewayDecode   = "failed to decode SMS gateway response"
)

var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s characters long",
	"max":          "must be at most %s characters long",
	"oneof":        "must be one of: %s",
	"password":     "must be at least 8 characters with one uppercase letter and one number",
	"user_type":    "must be one of: patient, healthcare-provider, hospital",
	"phone_number": "must be a valid international phone number",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
