package authorization

// UserRole is the access level attached to an account. There are exactly two:
// admins run the service desk, users file tickets.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// ParseUserRole maps a stored role string to a UserRole. Unknown values
// degrade to RoleUser, so a bad row never grants admin.
func ParseUserRole(s string) UserRole {
	if role := UserRole(s); role.IsValid() {
		return role
	}
	return RoleUser
}
