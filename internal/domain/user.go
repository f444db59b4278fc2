package domain

import "time"

// User represents a registered user record.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Active    bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser builds an unsaved user with the creation timestamp assigned now (UTC).
func NewUser(username, email string) *User {
	return &User{
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
