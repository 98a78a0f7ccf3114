package domain

import (
	"time"
)

// Role represents a user role in the marketplace
type Role string

const (
	RoleJobSeeker   Role = "jobseeker"
	RoleJobProvider Role = "jobprovider"
)

// ValidRole reports whether s is one of the known roles
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleJobSeeker, RoleJobProvider:
		return true
	}
	return false
}

// User represents a user entity
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	Role         Role      `json:"role"`
	FullName     string    `json:"full_name"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	Province     string    `json:"province"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims represents the verified identity carried by a session token
type Claims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
