package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleClient = "client"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminRegistration  = errors.New("cannot register as admin")
)

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAgent, RoleClient:
		return true
	}
	return false
}

// CanMutate reports whether the requester may change a resource owned by any of
// ownerIDs. Admins may change everything; otherwise the requester must be one
// of the owners. Empty owner ids never match.
func CanMutate(requesterID, requesterRole string, ownerIDs ...string) bool {
	if requesterRole == RoleAdmin {
		return true
	}
	if requesterID == "" {
		return false
	}
	for _, id := range ownerIDs {
		if id != "" && id == requesterID {
			return true
		}
	}
	return false
}
