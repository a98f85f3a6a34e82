package models

// RoleAdmin is the role tag shared by every admin. It is a property of the
// type, not of any one instance.
const RoleAdmin = "admin"

// Admin "inherits" from User via embedding. The distinguishing state is Level,
// which starts at 1 and only ever moves up via Promote.
type Admin struct {
	User
	Level int
}

// NewAdmin creates an admin at level 1.
func NewAdmin(name, email string) *Admin {
	return NewAdminWithLevel(name, email, 1)
}

// NewAdminWithLevel creates an admin at an explicit starting level.
func NewAdminWithLevel(name, email string, level int) *Admin {
	return &Admin{User: User{Name: name, Email: email}, Level: level}
}

// Role reports the admin role tag.
func (a *Admin) Role() string {
	return RoleAdmin
}

// Promote raises the admin's level by one. There is no upper bound.
func (a *Admin) Promote() {
	a.Level++
}
