package models

import "time"

// User is a bot user seen by the transport. Kept for greetings and
// lifecycle logs only; deadlines themselves are shared, not per-user.
type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	Username         string    `json:"username"`
	RegistrationDate time.Time `json:"registration_date"`
	LastActivity     time.Time `json:"last_activity"`
}
