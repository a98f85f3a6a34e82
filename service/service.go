// Package service provides stateless construction and greeting helpers over
// the account models.
package service

import (
	"errors"

	"userAccountManagement/models"
)

// ErrNoGreeter is returned by GetGreeting when it is handed nothing to greet.
var ErrNoGreeter = errors.New("value does not provide a greeting")

// CreateUser constructs a user with the given fields. No validation is performed.
func CreateUser(name, email string) *models.User {
	return models.NewUser(name, email)
}

// CreateAdmin constructs an admin starting at level 1.
func CreateAdmin(name, email string) *models.Admin {
	return models.NewAdmin(name, email)
}

// CreateAdminWithLevel constructs an admin at an explicit starting level.
func CreateAdminWithLevel(name, email string, level int) *models.Admin {
	return models.NewAdminWithLevel(name, email, level)
}

// GetGreeting returns the greeting of any value implementing Greeter.
func GetGreeting(g models.Greeter) (string, error) {
	if g == nil {
		return "", ErrNoGreeter
	}
	return g.Greet(), nil
}
