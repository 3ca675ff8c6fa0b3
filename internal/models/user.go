package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a single document in the users collection. The password is stored
// and returned verbatim; this API does no hashing.
type User struct {
	ID       primitive.ObjectID `json:"_id"      bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email"    bson:"email"`
	Password string             `json:"password" bson:"password"`
}

// UserRequest is the JSON body for POST /users/user.
type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *UserRequest) User() *User {
	return &User{Username: r.Username, Email: r.Email, Password: r.Password}
}
