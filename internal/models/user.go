package models

// User represents a user account in the system.
type User struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
}
