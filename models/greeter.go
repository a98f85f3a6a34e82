package models

// Greeter is the capability of producing a greeting. Both User and Admin
// satisfy it, so callers can greet either without knowing the concrete type.
type Greeter interface {
	Greet() string
}
