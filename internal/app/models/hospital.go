package models

type HospitalProfile struct {
	ID            string `json:"_id" bson:"_id,omitempty"`
	UserID        string `json:"userId,omitempty" bson:"userId,omitempty"`
	Name          string `json:"name" bson:"name"`
	Address       string `json:"address" bson:"address"`
	ContactNumber string `json:"contactNumber" bson:"contactNumber"`
	TimeModel     `bson:",inline"`
}
