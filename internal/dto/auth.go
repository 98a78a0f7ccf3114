package dto

import (
	"regexp"

	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
)

// PersonalInfo carries the profile fields collected at registration
type PersonalInfo struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Province    string `json:"province" binding:"required"`
	City        string `json:"city" binding:"required"`
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username        string       `json:"username" binding:"required"`
	Password        string       `json:"password" binding:"required"`
	ConfirmPassword string       `json:"confirmPassword" binding:"required"`
	Role            string       `json:"role" binding:"required"`
	PersonalInfo    PersonalInfo `json:"personalInfo" binding:"required"`
}

// ValidatePasswords checks that the password and its confirmation match.
// The comparison happens before any hashing.
func (r *RegisterRequest) ValidatePasswords() (bool, string) {
	if r.Password != r.ConfirmPassword {
		return false, "Passwords do not match."
	}
	return true, ""
}

// ValidateRole checks the role against the closed set of marketplace roles
func (r *RegisterRequest) ValidateRole() (bool, string) {
	if !domain.ValidRole(r.Role) {
		return false, "Role must be jobseeker or jobprovider."
	}
	return true, ""
}

// ValidateEmail validates email format
func (r *RegisterRequest) ValidateEmail() (bool, string) {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(r.PersonalInfo.Email) {
		return false, "Invalid email format."
	}
	return true, ""
}

// RegisterResponse represents the body returned on successful registration
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginRequest represents login request. The identifier may be either
// the account email or the username.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// LoginResponse represents the body returned on successful login. The
// session token itself travels in the cookie, not the body.
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// MeResponse represents the current-user profile subset
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	City     string `json:"city"`
	Province string `json:"province"`
}
