package domain

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID            int32     `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	PhoneNumber   string    `json:"phoneNumber"`
	AvatarMediaID *int32    `json:"avatarMediaId"`
	Role          Role      `json:"role"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfilePatch holds the user-editable profile fields. Nil fields are left untouched.
type ProfilePatch struct {
	FullName      *string
	PhoneNumber   *string
	AvatarMediaID *int32
}
