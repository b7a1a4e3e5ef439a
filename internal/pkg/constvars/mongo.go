package constvars

const (
	MongoCollectionUsers            = "users"
	MongoCollectionPatientProfiles  = "patientprofiles"
	MongoCollectionProviderProfiles = "providerprofiles"
	MongoCollectionHospitalProfiles = "hospitalprofiles"
	MongoCollectionSMSMessages      = "smsmessages"
)
