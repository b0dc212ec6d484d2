package model

import "time"

// User is the account record created on first OAuth login. ID is the Google
// account id, a decimal string that is not a UUID.
// Pure domain model: no database-specific dependencies or tags.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}
