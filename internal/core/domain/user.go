package domain

import "time"

// User is a registered user of the tutorial web services.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

// Post is a short text authored by a user.
type Post struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	UserID      int    `json:"-"`
}
