package model

// Role determines which routes an account may reach.
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Valid reports whether r is one of the known roles. Tokens carrying any
// other value are rejected at decode time instead of being trusted as an
// open string.
func (r Role) Valid() bool {
	return r == RoleInstructor || r == RoleStudent
}
