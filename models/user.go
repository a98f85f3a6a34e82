package models

import "fmt"

// User represents an end user in the system.
// Name and Email are stored verbatim; nothing is validated at construction.
type User struct {
	Name  string
	Email string
}

// NewUser creates a user with the given name and email.
func NewUser(name, email string) *User {
	return &User{Name: name, Email: email}
}

// Greet returns the user's greeting line.
func (u User) Greet() string {
	return fmt.Sprintf("Hello, %s!", u.Name)
}
