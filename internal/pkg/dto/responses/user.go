package responses

type UserProfile struct {
	ID       string      `json:"_id"`
	Email    string      `json:"email"`
	UserType string      `json:"userType"`
	Profile  interface{} `json:"profile"`
}
