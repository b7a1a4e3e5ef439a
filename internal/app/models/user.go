package models

// User is the login-capable identity record. ProfileID points to exactly one
// profile document of the matching role and is immutable after creation.
// UserType duplicates Role for backward compatibility with older clients.
type User struct {
	ID        string `json:"_id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	UserType  string `json:"userType" bson:"userType"`
	Role      string `json:"role" bson:"role"`
	ProfileID string `json:"profile" bson:"profile"`
	TimeModel `bson:",inline"`
}
