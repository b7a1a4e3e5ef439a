package responses

type Register struct {
	ID       string      `json:"_id"`
	Email    string      `json:"email"`
	UserType string      `json:"userType"`
	Profile  interface{} `json:"profile"`
	Token    string      `json:"token"`
}

type Login struct {
	ID       string      `json:"_id"`
	Email    string      `json:"email"`
	UserType string      `json:"userType"`
	Profile  interface{} `json:"profile"`
	Token    string      `json:"token"`
}

type RegisterPatientByProvider struct {
	Profile      interface{} `json:"profile"`
	RegisteredBy string      `json:"registeredBy"`
}
