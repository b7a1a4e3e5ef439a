package constvars

const (
	UserCreatedSuccess    = "User successfully registered"
	PatientCreatedSuccess = "Patient registered successfully"
	LoginSuccess          = "Successfully logged in"
	GetProfileSuccess     = "Successfully fetched profile"
	UpdateProfileSuccess  = "Successfully updated profile"

	MessageReceivedSuccess    = "Message received"
	MessageSentSuccess        = "Message processed"
	MessagesFetchedSuccess    = "Successfully fetched messages"
	StatisticsFetchedSuccess  = "Successfully fetched message statistics"
	MessageMarkedReadSuccess  = "Message marked as read"
	MessagesMarkedReadSuccess = "Messages marked as read"
)
