package models

// User holds the structure for an officer account in the users
// collection. Accounts are provisioned out of band; the API only
// authenticates against them.
type User struct {
	ID      string      `json:"_id" bson:"_id"`
	Details UserDetails `json:"user" bson:"user"`
	Version int32       `json:"__v" bson:"__v"`
}

// UserDetails holds the inner user document.
type UserDetails struct {
	Email     string      `json:"email" bson:"email"`
	Name      string      `json:"name" bson:"name"`
	Pangkat   string      `json:"pangkat" bson:"pangkat"`
	NRP       string      `json:"nrp" bson:"nrp"`
	Password  string      `json:"password" bson:"password"`
	Roles     []string    `json:"roles" bson:"roles"`
	CreatedAt interface{} `json:"createdAt" bson:"createdAt"`
	UpdatedAt interface{} `json:"updatedAt" bson:"updatedAt"`
}
