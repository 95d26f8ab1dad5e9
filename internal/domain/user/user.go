package user

import (
	"fmt"
	"regexp"
	"time"

	"haitch/internal/shared/authorization"
)

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id           uint
	username     string
	passwordHash string
	name         string
	phone        string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user aggregate with initial values
func NewUser(username, passwordHash, name, phone string, role authorization.UserRole) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("invalid phone number: %s", phone)
	}
	if !role.IsValid() {
		role = authorization.RoleUser
	}

	now := time.Now()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, username, passwordHash, name, phone string, role authorization.UserRole, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Name() string                 { return u.name }
func (u *User) Phone() string                { return u.phone }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

// UpdateProfile changes the mutable profile fields.
func (u *User) UpdateProfile(name, phone string) error {
	if phone != "" && !phonePattern.MatchString(phone) {
		return fmt.Errorf("invalid phone number: %s", phone)
	}
	u.name = name
	u.phone = phone
	u.updatedAt = time.Now()
	return nil
}

// ChangePassword replaces the stored password hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole assigns a new role.
func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// IsValidPhone reports whether s is an accepted mobile number.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
