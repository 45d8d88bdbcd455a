package domain

import "time"

// User is the admin account. The hash is stored under "password" so documents
// written by earlier deployments stay readable.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"-" bson:"createdAt"`
	UpdatedAt    time.Time `json:"-" bson:"updatedAt"`
}
